package item

import "time"

// --- Enumerations ---

// ItemType is the kind of catalog item.
type ItemType string

const (
	ItemTypeBook               ItemType = "book"
	ItemTypePeriodical         ItemType = "periodical"
	ItemTypeJournal            ItemType = "journal"
	ItemTypeMagazine           ItemType = "magazine"
	ItemTypeNewspaper          ItemType = "newspaper"
	ItemTypeDVD                ItemType = "dvd"
	ItemTypeCD                 ItemType = "cd"
	ItemTypeAudiobook          ItemType = "audiobook"
	ItemTypeEBook              ItemType = "ebook"
	ItemTypeMap                ItemType = "map"
	ItemTypeManuscript         ItemType = "manuscript"
	ItemTypeThesis             ItemType = "thesis"
	ItemTypeGovernmentDocument ItemType = "government_document"
	ItemTypeReference          ItemType = "reference"
	ItemTypeMicrofilm          ItemType = "microfilm"
	ItemTypeMicroform          ItemType = "microform"
	ItemTypeDigitalResource    ItemType = "digital_resource"
)

// ItemTypes lists every valid ItemType value.
var ItemTypes = []ItemType{
	ItemTypeBook, ItemTypePeriodical, ItemTypeJournal, ItemTypeMagazine,
	ItemTypeNewspaper, ItemTypeDVD, ItemTypeCD, ItemTypeAudiobook,
	ItemTypeEBook, ItemTypeMap, ItemTypeManuscript, ItemTypeThesis,
	ItemTypeGovernmentDocument, ItemTypeReference, ItemTypeMicrofilm,
	ItemTypeMicroform, ItemTypeDigitalResource,
}

// ItemStatus is the lifecycle status of an item. There is no transition
// graph: any status may be set by update or patch. The single state-dependent
// rule is that checked-out items cannot be deleted.
type ItemStatus string

const (
	StatusAvailable     ItemStatus = "available"
	StatusCheckedOut    ItemStatus = "checked_out"
	StatusReserved      ItemStatus = "reserved"
	StatusInProcessing  ItemStatus = "in_processing"
	StatusDamaged       ItemStatus = "damaged"
	StatusMissing       ItemStatus = "missing"
	StatusWithdrawn     ItemStatus = "withdrawn"
	StatusOnHold        ItemStatus = "on_hold"
	StatusInTransit     ItemStatus = "in_transit"
	StatusReferenceOnly ItemStatus = "reference_only"
)

// ItemStatuses lists every valid ItemStatus value.
var ItemStatuses = []ItemStatus{
	StatusAvailable, StatusCheckedOut, StatusReserved, StatusInProcessing,
	StatusDamaged, StatusMissing, StatusWithdrawn, StatusOnHold,
	StatusInTransit, StatusReferenceOnly,
}

// CanDelete reports whether an item in the given status may be removed.
func CanDelete(status ItemStatus) bool {
	return status != StatusCheckedOut
}

// Classification is the call-number classification scheme.
type Classification string

const (
	ClassificationDewey Classification = "dewey"
	ClassificationLC    Classification = "lc"
	ClassificationSuDoc Classification = "sudoc"
	ClassificationLocal Classification = "local"
)

// Classifications lists every valid Classification value.
var Classifications = []Classification{
	ClassificationDewey, ClassificationLC, ClassificationSuDoc, ClassificationLocal,
}

// SortField is a resolved list sort key.
type SortField string

const (
	SortByTitle           SortField = "title"
	SortByAuthor          SortField = "author"
	SortByPublicationDate SortField = "publication_date"
	SortByCallNumber      SortField = "call_number"
	SortByCreatedAt       SortField = "created_at"
	SortByUpdatedAt       SortField = "updated_at"
	SortByItemType        SortField = "item_type"
	SortByStatus          SortField = "status"
)

// --- Domain model ---

// Location is the embedded shelving location. It is replaced wholesale on
// patch, never merged field by field.
type Location struct {
	Floor     int
	Section   string
	ShelfCode string
	Wing      string
	Position  string
	Notes     string
}

// Item is the library catalog record managed by this module.
type Item struct {
	ID string

	// Descriptive
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

	// Classification
	ItemType       ItemType
	CallNumber     string
	Classification Classification

	// Shelving
	Location Location

	// Lifecycle
	Status ItemStatus

	// Acquisition
	Barcode         string
	AcquisitionDate *time.Time
	Cost            *float64
	ConditionNotes  string
	Description     string
	Subjects        []string
	DigitalURL      string

	// Audit — set by the mutation path only, never by clients.
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// --- UseCase inputs ---

// LocationInput is the client-supplied shelving location.
type LocationInput struct {
	Floor     int
	Section   string
	ShelfCode string
	Wing      string
	Position  string
	Notes     string
}

func (l LocationInput) toLocation() Location {
	return Location{
		Floor:     l.Floor,
		Section:   l.Section,
		ShelfCode: l.ShelfCode,
		Wing:      l.Wing,
		Position:  l.Position,
		Notes:     l.Notes,
	}
}

// CreateItemInput holds every client-settable field for item creation.
// Status is not accepted at creation; new items start as available.
type CreateItemInput struct {
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

// UpdateItemInput is a full replacement of every mutable field, status
// included. Absent optional fields are cleared, not preserved.
type UpdateItemInput struct {
	ID              string
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
	Status          ItemStatus
	Barcode         string
	AcquisitionDate *time.Time
	Cost            *float64
	ConditionNotes  string
	Description     string
	Subjects        []string
	DigitalURL      string
}

// PatchItemInput is a partial update. Nil means "leave unchanged"; a non-nil
// pointer overwrites the stored value. Location is all-or-nothing: when
// present the whole embedded location is replaced.
type PatchItemInput struct {
	ID              string
	Title           *string
	Subtitle        *string
	Author          *string
	Contributors    *[]string
	ISBN            *string
	ISSN            *string
	Publisher       *string
	PublicationDate *time.Time
	Edition         *string
	Pages           *int
	Language        *string
	Collection      *string
	ItemType        *ItemType
	CallNumber      *string
	Classification  *Classification
	Location        *LocationInput
	Status          *ItemStatus
	Barcode         *string
	AcquisitionDate *time.Time
	Cost            *float64
	ConditionNotes  *string
	Description     *string
	Subjects        *[]string
	DigitalURL      *string
}

// ListItemsInput holds the optional filters plus sort and pagination
// parameters for listing. Supplied filters are combined with AND.
type ListItemsInput struct {
	Title               string
	Author              string
	ISBN                string
	ItemType            string
	Status              string
	Collection          string
	LocationFloor       *int
	LocationSection     string
	CallNumber          string
	PublicationYearFrom *int
	PublicationYearTo   *int

	SortBy    string
	SortOrder string

	Page  int
	Limit int
}

// --- UseCase outputs ---

// Pagination is the page metadata returned alongside a listing.
type Pagination struct {
	Page        int
	Limit       int
	TotalItems  int
	TotalPages  int
	HasNext     bool
	HasPrevious bool
}

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items      []Item
	Pagination Pagination
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}

type PatchItemOutput struct {
	Item Item
}
