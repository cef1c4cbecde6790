package http

import (
	"time"

	"library-catalog/internal/item"
	"library-catalog/pkg/response"
	"library-catalog/pkg/validator"
)

// --- Request DTOs ---

type locationReq struct {
	Floor     int    `json:"floor"`
	Section   string `json:"section"`
	ShelfCode string `json:"shelf_code"`
	Wing      string `json:"wing"`
	Position  string `json:"position"`
	Notes     string `json:"notes"`
}

func (r locationReq) toInput() item.LocationInput {
	return item.LocationInput{
		Floor:     r.Floor,
		Section:   r.Section,
		ShelfCode: r.ShelfCode,
		Wing:      r.Wing,
		Position:  r.Position,
		Notes:     r.Notes,
	}
}

type createReq struct {
	Title           string      `json:"title"`
	Subtitle        string      `json:"subtitle"`
	Author          string      `json:"author"`
	Contributors    []string    `json:"contributors"`
	ISBN            string      `json:"isbn"`
	ISSN            string      `json:"issn"`
	Publisher       string      `json:"publisher"`
	PublicationDate string      `json:"publication_date"` // YYYY-MM-DD
	Edition         string      `json:"edition"`
	Pages           int         `json:"pages"`
	Language        string      `json:"language"`
	Collection      string      `json:"collection"`
	ItemType        string      `json:"item_type"`
	CallNumber      string      `json:"call_number"`
	Classification  string      `json:"classification"`
	Location        locationReq `json:"location"`
	Barcode         string      `json:"barcode"`
	AcquisitionDate string      `json:"acquisition_date"` // YYYY-MM-DD
	Cost            *float64    `json:"cost"`
	ConditionNotes  string      `json:"condition_notes"`
	Description     string      `json:"description"`
	Subjects        []string    `json:"subjects"`
	DigitalURL      string      `json:"digital_url"`
}

func (r createReq) toInput(v *validator.Validator) item.CreateItemInput {
	return item.CreateItemInput{
		Title:           r.Title,
		Subtitle:        r.Subtitle,
		Author:          r.Author,
		Contributors:    r.Contributors,
		ISBN:            r.ISBN,
		ISSN:            r.ISSN,
		Publisher:       r.Publisher,
		PublicationDate: parseDate(v, "publication_date", r.PublicationDate),
		Edition:         r.Edition,
		Pages:           r.Pages,
		Language:        r.Language,
		Collection:      r.Collection,
		ItemType:        item.ItemType(r.ItemType),
		CallNumber:      r.CallNumber,
		Classification:  item.Classification(r.Classification),
		Location:        r.Location.toInput(),
		Barcode:         r.Barcode,
		AcquisitionDate: parseDate(v, "acquisition_date", r.AcquisitionDate),
		Cost:            r.Cost,
		ConditionNotes:  r.ConditionNotes,
		Description:     r.Description,
		Subjects:        r.Subjects,
		DigitalURL:      r.DigitalURL,
	}
}

type updateReq struct {
	ID              string      `json:"-"` // populated from URI param
	Title           string      `json:"title"`
	Subtitle        string      `json:"subtitle"`
	Author          string      `json:"author"`
	Contributors    []string    `json:"contributors"`
	ISBN            string      `json:"isbn"`
	ISSN            string      `json:"issn"`
	Publisher       string      `json:"publisher"`
	PublicationDate string      `json:"publication_date"` // YYYY-MM-DD
	Edition         string      `json:"edition"`
	Pages           int         `json:"pages"`
	Language        string      `json:"language"`
	Collection      string      `json:"collection"`
	ItemType        string      `json:"item_type"`
	CallNumber      string      `json:"call_number"`
	Classification  string      `json:"classification"`
	Location        locationReq `json:"location"`
	Status          string      `json:"status"`
	Barcode         string      `json:"barcode"`
	AcquisitionDate string      `json:"acquisition_date"` // YYYY-MM-DD
	Cost            *float64    `json:"cost"`
	ConditionNotes  string      `json:"condition_notes"`
	Description     string      `json:"description"`
	Subjects        []string    `json:"subjects"`
	DigitalURL      string      `json:"digital_url"`
}

func (r updateReq) toInput(v *validator.Validator) item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:              r.ID,
		Title:           r.Title,
		Subtitle:        r.Subtitle,
		Author:          r.Author,
		Contributors:    r.Contributors,
		ISBN:            r.ISBN,
		ISSN:            r.ISSN,
		Publisher:       r.Publisher,
		PublicationDate: parseDate(v, "publication_date", r.PublicationDate),
		Edition:         r.Edition,
		Pages:           r.Pages,
		Language:        r.Language,
		Collection:      r.Collection,
		ItemType:        item.ItemType(r.ItemType),
		CallNumber:      r.CallNumber,
		Classification:  item.Classification(r.Classification),
		Location:        r.Location.toInput(),
		Status:          item.ItemStatus(r.Status),
		Barcode:         r.Barcode,
		AcquisitionDate: parseDate(v, "acquisition_date", r.AcquisitionDate),
		Cost:            r.Cost,
		ConditionNotes:  r.ConditionNotes,
		Description:     r.Description,
		Subjects:        r.Subjects,
		DigitalURL:      r.DigitalURL,
	}
}

// patchReq distinguishes "absent" (nil, keep stored value) from
// "intentionally set" via pointer fields.
type patchReq struct {
	ID              string       `json:"-"` // populated from URI param
	Title           *string      `json:"title"`
	Subtitle        *string      `json:"subtitle"`
	Author          *string      `json:"author"`
	Contributors    *[]string    `json:"contributors"`
	ISBN            *string      `json:"isbn"`
	ISSN            *string      `json:"issn"`
	Publisher       *string      `json:"publisher"`
	PublicationDate *string      `json:"publication_date"` // YYYY-MM-DD
	Edition         *string      `json:"edition"`
	Pages           *int         `json:"pages"`
	Language        *string      `json:"language"`
	Collection      *string      `json:"collection"`
	ItemType        *string      `json:"item_type"`
	CallNumber      *string      `json:"call_number"`
	Classification  *string      `json:"classification"`
	Location        *locationReq `json:"location"`
	Status          *string      `json:"status"`
	Barcode         *string      `json:"barcode"`
	AcquisitionDate *string      `json:"acquisition_date"` // YYYY-MM-DD
	Cost            *float64     `json:"cost"`
	ConditionNotes  *string      `json:"condition_notes"`
	Description     *string      `json:"description"`
	Subjects        *[]string    `json:"subjects"`
	DigitalURL      *string      `json:"digital_url"`
}

func (r patchReq) toInput(v *validator.Validator) item.PatchItemInput {
	in := item.PatchItemInput{
		ID:             r.ID,
		Title:          r.Title,
		Subtitle:       r.Subtitle,
		Author:         r.Author,
		Contributors:   r.Contributors,
		ISBN:           r.ISBN,
		ISSN:           r.ISSN,
		Publisher:      r.Publisher,
		Edition:        r.Edition,
		Pages:          r.Pages,
		Language:       r.Language,
		Collection:     r.Collection,
		CallNumber:     r.CallNumber,
		Barcode:        r.Barcode,
		Cost:           r.Cost,
		ConditionNotes: r.ConditionNotes,
		Description:    r.Description,
		Subjects:       r.Subjects,
		DigitalURL:     r.DigitalURL,
	}
	if r.PublicationDate != nil {
		in.PublicationDate = parseDate(v, "publication_date", *r.PublicationDate)
	}
	if r.AcquisitionDate != nil {
		in.AcquisitionDate = parseDate(v, "acquisition_date", *r.AcquisitionDate)
	}
	if r.ItemType != nil {
		t := item.ItemType(*r.ItemType)
		in.ItemType = &t
	}
	if r.Classification != nil {
		c := item.Classification(*r.Classification)
		in.Classification = &c
	}
	if r.Status != nil {
		s := item.ItemStatus(*r.Status)
		in.Status = &s
	}
	if r.Location != nil {
		loc := r.Location.toInput()
		in.Location = &loc
	}
	return in
}

type listReq struct {
	Page                int    `form:"page,default=1"`
	Limit               int    `form:"limit,default=20"`
	Title               string `form:"title"`
	Author              string `form:"author"`
	ISBN                string `form:"isbn"`
	ItemType            string `form:"item_type"`
	Status              string `form:"status"`
	Collection          string `form:"collection"`
	LocationFloor       *int   `form:"location_floor"`
	LocationSection     string `form:"location_section"`
	CallNumber          string `form:"call_number"`
	PublicationYearFrom *int   `form:"publication_year_from"`
	PublicationYearTo   *int   `form:"publication_year_to"`
	SortBy              string `form:"sort_by"`
	SortOrder           string `form:"sort_order"`
}

func (r listReq) toInput() item.ListItemsInput {
	return item.ListItemsInput{
		Title:               r.Title,
		Author:              r.Author,
		ISBN:                r.ISBN,
		ItemType:            r.ItemType,
		Status:              r.Status,
		Collection:          r.Collection,
		LocationFloor:       r.LocationFloor,
		LocationSection:     r.LocationSection,
		CallNumber:          r.CallNumber,
		PublicationYearFrom: r.PublicationYearFrom,
		PublicationYearTo:   r.PublicationYearTo,
		SortBy:              r.SortBy,
		SortOrder:           r.SortOrder,
		Page:                r.Page,
		Limit:               r.Limit,
	}
}

// parseDate converts a YYYY-MM-DD string to a UTC time, recording a field
// error when it does not parse. Empty means absent.
func parseDate(v *validator.Validator, field, raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse(response.DateFormat, raw)
	if err != nil {
		v.AddError(field, "must be a date in YYYY-MM-DD format")
		return nil
	}
	t = t.UTC()
	return &t
}

// --- Response DTOs ---

type locationResp struct {
	Floor     int    `json:"floor"`
	Section   string `json:"section"`
	ShelfCode string `json:"shelf_code"`
	Wing      string `json:"wing,omitempty"`
	Position  string `json:"position,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type itemResp struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Subtitle        string         `json:"subtitle,omitempty"`
	Author          string         `json:"author,omitempty"`
	Contributors    []string       `json:"contributors,omitempty"`
	ISBN            string         `json:"isbn,omitempty"`
	ISSN            string         `json:"issn,omitempty"`
	Publisher       string         `json:"publisher,omitempty"`
	PublicationDate *response.Date `json:"publication_date,omitempty"`
	Edition         string         `json:"edition,omitempty"`
	Pages           int            `json:"pages,omitempty"`
	Language        string         `json:"language,omitempty"`
	Collection      string         `json:"collection,omitempty"`
	ItemType        string         `json:"item_type"`
	CallNumber      string         `json:"call_number"`
	Classification  string         `json:"classification"`
	Location        locationResp   `json:"location"`
	Status          string         `json:"status"`
	Barcode         string         `json:"barcode,omitempty"`
	AcquisitionDate *response.Date `json:"acquisition_date,omitempty"`
	Cost            *float64       `json:"cost,omitempty"`
	ConditionNotes  string         `json:"condition_notes,omitempty"`
	Description     string         `json:"description,omitempty"`
	Subjects        []string       `json:"subjects,omitempty"`
	DigitalURL      string         `json:"digital_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	CreatedBy       string         `json:"created_by,omitempty"`
	UpdatedBy       string         `json:"updated_by,omitempty"`
}

func newItemResp(it item.Item) itemResp {
	resp := itemResp{
		ID:             it.ID,
		Title:          it.Title,
		Subtitle:       it.Subtitle,
		Author:         it.Author,
		Contributors:   it.Contributors,
		ISBN:           it.ISBN,
		ISSN:           it.ISSN,
		Publisher:      it.Publisher,
		Edition:        it.Edition,
		Pages:          it.Pages,
		Language:       it.Language,
		Collection:     it.Collection,
		ItemType:       string(it.ItemType),
		CallNumber:     it.CallNumber,
		Classification: string(it.Classification),
		Location: locationResp{
			Floor:     it.Location.Floor,
			Section:   it.Location.Section,
			ShelfCode: it.Location.ShelfCode,
			Wing:      it.Location.Wing,
			Position:  it.Location.Position,
			Notes:     it.Location.Notes,
		},
		Status:         string(it.Status),
		Barcode:        it.Barcode,
		Cost:           it.Cost,
		ConditionNotes: it.ConditionNotes,
		Description:    it.Description,
		Subjects:       it.Subjects,
		DigitalURL:     it.DigitalURL,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
		CreatedBy:      it.CreatedBy,
		UpdatedBy:      it.UpdatedBy,
	}
	if it.PublicationDate != nil {
		d := response.Date(*it.PublicationDate)
		resp.PublicationDate = &d
	}
	if it.AcquisitionDate != nil {
		d := response.Date(*it.AcquisitionDate)
		resp.AcquisitionDate = &d
	}
	return resp
}

type paginationResp struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out item.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items      []itemResp     `json:"items"`
	Pagination paginationResp `json:"pagination"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{
		Items: items,
		Pagination: paginationResp{
			Page:        out.Pagination.Page,
			Limit:       out.Pagination.Limit,
			TotalItems:  out.Pagination.TotalItems,
			TotalPages:  out.Pagination.TotalPages,
			HasNext:     out.Pagination.HasNext,
			HasPrevious: out.Pagination.HasPrevious,
		},
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out item.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

type patchResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newPatchResp(out item.PatchItemOutput) patchResp {
	return patchResp{Item: newItemResp(out.Item)}
}
