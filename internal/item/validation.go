package item

import (
	"fmt"
	"net/url"
	"time"

	"library-catalog/pkg/validator"
)

// Field limits. Length caps mirror the column sizes of the backing table.
const (
	maxTitleLen          = 500
	maxSubtitleLen       = 500
	maxAuthorLen         = 255
	maxPublisherLen      = 255
	maxEditionLen        = 50
	maxLanguageLen       = 10
	maxCollectionLen     = 100
	maxCallNumberLen     = 50
	maxSectionLen        = 10
	maxShelfCodeLen      = 20
	maxWingLen           = 50
	maxPositionLen       = 50
	maxLocationNotesLen  = 500
	maxBarcodeLen        = 50
	maxConditionNotesLen = 1000
	maxDescriptionLen    = 2000
	maxSubjectLen        = 100
	maxContributorLen    = 255

	maxContributors = 20
	maxSubjects     = 50

	minFloor = -2
	maxFloor = 20

	// A publication date further out than this is treated as a data error.
	maxPublicationYearsAhead = 5

	maxPageLimit = 100
)

// ValidateCreateInput evaluates every field rule against a create payload and
// returns all violations.
func ValidateCreateInput(in CreateItemInput) []validator.FieldError {
	v := validator.New()
	validatePayload(v, payloadOf(in))
	return v.Errors()
}

// ValidateUpdateInput evaluates a full-replace payload, including status.
func ValidateUpdateInput(in UpdateItemInput) []validator.FieldError {
	v := validator.New()
	validatePayload(v, payloadOfUpdate(in))
	v.Check(validator.In(string(in.Status), statusStrings()...), "status", "must be a valid item status")
	return v.Errors()
}

// ValidatePatchInput evaluates only the supplied (non-nil) fields of a patch
// payload. Title is the one required-if-present field: an explicit empty
// string is a violation, while nil leaves the stored title untouched.
func ValidatePatchInput(in PatchItemInput) []validator.FieldError {
	v := validator.New()

	if in.Title != nil {
		v.Check(*in.Title != "", "title", "must not be empty")
		v.Check(len(*in.Title) <= maxTitleLen, "title", lenMsg(maxTitleLen))
	}
	if in.Subtitle != nil {
		v.Check(len(*in.Subtitle) <= maxSubtitleLen, "subtitle", lenMsg(maxSubtitleLen))
	}
	if in.Author != nil {
		v.Check(len(*in.Author) <= maxAuthorLen, "author", lenMsg(maxAuthorLen))
	}
	if in.Contributors != nil {
		validateContributors(v, *in.Contributors)
	}
	if in.ISBN != nil && *in.ISBN != "" {
		v.Check(validator.Matches(*in.ISBN, validator.ISBNRX), "isbn", "must be a valid 10 or 13 digit ISBN")
	}
	if in.ISSN != nil && *in.ISSN != "" {
		v.Check(validator.Matches(*in.ISSN, validator.ISSNRX), "issn", "must be a valid ISSN (e.g. 1234-567X)")
	}
	if in.Publisher != nil {
		v.Check(len(*in.Publisher) <= maxPublisherLen, "publisher", lenMsg(maxPublisherLen))
	}
	if in.PublicationDate != nil {
		validatePublicationDate(v, in.PublicationDate)
	}
	if in.Edition != nil {
		v.Check(len(*in.Edition) <= maxEditionLen, "edition", lenMsg(maxEditionLen))
	}
	if in.Pages != nil {
		v.Check(*in.Pages > 0, "pages", "must be greater than zero")
	}
	if in.Language != nil {
		v.Check(len(*in.Language) <= maxLanguageLen, "language", lenMsg(maxLanguageLen))
	}
	if in.Collection != nil {
		v.Check(len(*in.Collection) <= maxCollectionLen, "collection", lenMsg(maxCollectionLen))
	}
	if in.ItemType != nil {
		v.Check(validator.In(string(*in.ItemType), itemTypeStrings()...), "item_type", "must be a valid item type")
	}
	if in.CallNumber != nil {
		v.Check(*in.CallNumber != "", "call_number", "must not be empty")
		v.Check(len(*in.CallNumber) <= maxCallNumberLen, "call_number", lenMsg(maxCallNumberLen))
	}
	if in.Classification != nil {
		v.Check(validator.In(string(*in.Classification), classificationStrings()...), "classification", "must be a valid classification scheme")
	}
	if in.Location != nil {
		validateLocation(v, *in.Location)
	}
	if in.Status != nil {
		v.Check(validator.In(string(*in.Status), statusStrings()...), "status", "must be a valid item status")
	}
	if in.Barcode != nil {
		v.Check(len(*in.Barcode) <= maxBarcodeLen, "barcode", lenMsg(maxBarcodeLen))
	}
	if in.AcquisitionDate != nil {
		v.Check(!in.AcquisitionDate.After(time.Now()), "acquisition_date", "must not be in the future")
	}
	if in.Cost != nil {
		v.Check(*in.Cost >= 0, "cost", "must not be negative")
	}
	if in.ConditionNotes != nil {
		v.Check(len(*in.ConditionNotes) <= maxConditionNotesLen, "condition_notes", lenMsg(maxConditionNotesLen))
	}
	if in.Description != nil {
		v.Check(len(*in.Description) <= maxDescriptionLen, "description", lenMsg(maxDescriptionLen))
	}
	if in.Subjects != nil {
		validateSubjects(v, *in.Subjects)
	}
	if in.DigitalURL != nil && *in.DigitalURL != "" {
		v.Check(isAbsoluteHTTPURL(*in.DigitalURL), "digital_url", "must be an absolute http or https URL")
	}

	return v.Errors()
}

// ValidateListInput evaluates the listing query parameters. Sort inputs are
// never a validation failure: unrecognized values fall back to defaults.
func ValidateListInput(in ListItemsInput) []validator.FieldError {
	v := validator.New()

	v.Check(in.Page >= 1, "page", "must be at least 1")
	v.Check(in.Limit >= 1 && in.Limit <= maxPageLimit, "limit", fmt.Sprintf("must be between 1 and %d", maxPageLimit))

	if in.ItemType != "" {
		v.Check(validator.In(in.ItemType, itemTypeStrings()...), "item_type", "must be a valid item type")
	}
	if in.Status != "" {
		v.Check(validator.In(in.Status, statusStrings()...), "status", "must be a valid item status")
	}
	if in.LocationFloor != nil {
		v.Check(*in.LocationFloor >= minFloor && *in.LocationFloor <= maxFloor, "location_floor", floorMsg())
	}
	if in.PublicationYearFrom != nil && in.PublicationYearTo != nil {
		v.Check(*in.PublicationYearFrom <= *in.PublicationYearTo, "publication_year_from", "must not be after publication_year_to")
	}

	return v.Errors()
}

// payload is the set of fields shared by create and full-update inputs.
type payload struct {
	Title           string
	Subtitle        string
	Author          string
	Contributors    []string
	ISBN            string
	ISSN            string
	Publisher       string
	PublicationDate *time.Time
	Edition         string
	Pages           int
	Language        string
	Collection      string
	ItemType        ItemType
	CallNumber      string
	Classification  Classification
	Location        LocationInput
	Barcode         string
	AcquisitionDate *time.Time
	Cost            *float64
	ConditionNotes  string
	Description     string
	Subjects        []string
	DigitalURL      string
}

func payloadOf(in CreateItemInput) payload {
	return payload{
		Title: in.Title, Subtitle: in.Subtitle, Author: in.Author,
		Contributors: in.Contributors, ISBN: in.ISBN, ISSN: in.ISSN,
		Publisher: in.Publisher, PublicationDate: in.PublicationDate,
		Edition: in.Edition, Pages: in.Pages, Language: in.Language,
		Collection: in.Collection, ItemType: in.ItemType,
		CallNumber: in.CallNumber, Classification: in.Classification,
		Location: in.Location, Barcode: in.Barcode,
		AcquisitionDate: in.AcquisitionDate, Cost: in.Cost,
		ConditionNotes: in.ConditionNotes, Description: in.Description,
		Subjects: in.Subjects, DigitalURL: in.DigitalURL,
	}
}

func payloadOfUpdate(in UpdateItemInput) payload {
	return payload{
		Title: in.Title, Subtitle: in.Subtitle, Author: in.Author,
		Contributors: in.Contributors, ISBN: in.ISBN, ISSN: in.ISSN,
		Publisher: in.Publisher, PublicationDate: in.PublicationDate,
		Edition: in.Edition, Pages: in.Pages, Language: in.Language,
		Collection: in.Collection, ItemType: in.ItemType,
		CallNumber: in.CallNumber, Classification: in.Classification,
		Location: in.Location, Barcode: in.Barcode,
		AcquisitionDate: in.AcquisitionDate, Cost: in.Cost,
		ConditionNotes: in.ConditionNotes, Description: in.Description,
		Subjects: in.Subjects, DigitalURL: in.DigitalURL,
	}
}

func validatePayload(v *validator.Validator, in payload) {
	v.Check(in.Title != "", "title", "must be provided")
	v.Check(len(in.Title) <= maxTitleLen, "title", lenMsg(maxTitleLen))
	v.Check(len(in.Subtitle) <= maxSubtitleLen, "subtitle", lenMsg(maxSubtitleLen))
	v.Check(len(in.Author) <= maxAuthorLen, "author", lenMsg(maxAuthorLen))

	validateContributors(v, in.Contributors)

	if in.ISBN != "" {
		v.Check(validator.Matches(in.ISBN, validator.ISBNRX), "isbn", "must be a valid 10 or 13 digit ISBN")
	}
	if in.ISSN != "" {
		v.Check(validator.Matches(in.ISSN, validator.ISSNRX), "issn", "must be a valid ISSN (e.g. 1234-567X)")
	}

	v.Check(len(in.Publisher) <= maxPublisherLen, "publisher", lenMsg(maxPublisherLen))
	validatePublicationDate(v, in.PublicationDate)
	v.Check(len(in.Edition) <= maxEditionLen, "edition", lenMsg(maxEditionLen))
	if in.Pages != 0 {
		v.Check(in.Pages > 0, "pages", "must be greater than zero")
	}
	v.Check(len(in.Language) <= maxLanguageLen, "language", lenMsg(maxLanguageLen))
	v.Check(len(in.Collection) <= maxCollectionLen, "collection", lenMsg(maxCollectionLen))

	v.Check(validator.In(string(in.ItemType), itemTypeStrings()...), "item_type", "must be a valid item type")

	v.Check(in.CallNumber != "", "call_number", "must be provided")
	v.Check(len(in.CallNumber) <= maxCallNumberLen, "call_number", lenMsg(maxCallNumberLen))

	v.Check(validator.In(string(in.Classification), classificationStrings()...), "classification", "must be a valid classification scheme")

	validateLocation(v, in.Location)

	v.Check(len(in.Barcode) <= maxBarcodeLen, "barcode", lenMsg(maxBarcodeLen))
	if in.AcquisitionDate != nil {
		v.Check(!in.AcquisitionDate.After(time.Now()), "acquisition_date", "must not be in the future")
	}
	if in.Cost != nil {
		v.Check(*in.Cost >= 0, "cost", "must not be negative")
	}
	v.Check(len(in.ConditionNotes) <= maxConditionNotesLen, "condition_notes", lenMsg(maxConditionNotesLen))
	v.Check(len(in.Description) <= maxDescriptionLen, "description", lenMsg(maxDescriptionLen))

	validateSubjects(v, in.Subjects)

	if in.DigitalURL != "" {
		v.Check(isAbsoluteHTTPURL(in.DigitalURL), "digital_url", "must be an absolute http or https URL")
	}
}

func validateLocation(v *validator.Validator, loc LocationInput) {
	v.Check(loc.Floor >= minFloor && loc.Floor <= maxFloor, "location.floor", floorMsg())
	v.Check(loc.Section != "", "location.section", "must be provided")
	v.Check(len(loc.Section) <= maxSectionLen, "location.section", lenMsg(maxSectionLen))
	v.Check(loc.ShelfCode != "", "location.shelf_code", "must be provided")
	v.Check(len(loc.ShelfCode) <= maxShelfCodeLen, "location.shelf_code", lenMsg(maxShelfCodeLen))
	v.Check(len(loc.Wing) <= maxWingLen, "location.wing", lenMsg(maxWingLen))
	v.Check(len(loc.Position) <= maxPositionLen, "location.position", lenMsg(maxPositionLen))
	v.Check(len(loc.Notes) <= maxLocationNotesLen, "location.notes", lenMsg(maxLocationNotesLen))
}

func validateContributors(v *validator.Validator, contributors []string) {
	v.Check(len(contributors) <= maxContributors, "contributors", fmt.Sprintf("must not contain more than %d entries", maxContributors))
	for _, c := range contributors {
		if c == "" {
			v.AddError("contributors", "must not contain empty entries")
			break
		}
		if len(c) > maxContributorLen {
			v.AddError("contributors", fmt.Sprintf("entries must not be longer than %d characters", maxContributorLen))
			break
		}
	}
}

func validateSubjects(v *validator.Validator, subjects []string) {
	v.Check(len(subjects) <= maxSubjects, "subjects", fmt.Sprintf("must not contain more than %d entries", maxSubjects))
	for _, s := range subjects {
		if s == "" {
			v.AddError("subjects", "must not contain empty entries")
			break
		}
		if len(s) > maxSubjectLen {
			v.AddError("subjects", fmt.Sprintf("entries must not be longer than %d characters", maxSubjectLen))
			break
		}
	}
}

func validatePublicationDate(v *validator.Validator, date *time.Time) {
	if date == nil {
		return
	}
	cutoff := time.Now().AddDate(maxPublicationYearsAhead, 0, 0)
	v.Check(date.Before(cutoff), "publication_date", fmt.Sprintf("must not be more than %d years in the future", maxPublicationYearsAhead))
}

func isAbsoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func lenMsg(max int) string {
	return fmt.Sprintf("must not be longer than %d characters", max)
}

func floorMsg() string {
	return fmt.Sprintf("must be between %d and %d", minFloor, maxFloor)
}

func itemTypeStrings() []string {
	out := make([]string, len(ItemTypes))
	for i, t := range ItemTypes {
		out[i] = string(t)
	}
	return out
}

func statusStrings() []string {
	out := make([]string, len(ItemStatuses))
	for i, s := range ItemStatuses {
		out[i] = string(s)
	}
	return out
}

func classificationStrings() []string {
	out := make([]string, len(Classifications))
	for i, c := range Classifications {
		out[i] = string(c)
	}
	return out
}
