package usecase

import "library-catalog/internal/item"

// resolveSort maps raw sort parameters to a store sort. An unrecognized or
// absent sort key falls back to ascending by title; an unrecognized
// direction falls back to ascending.
func resolveSort(sortBy, sortOrder string) (item.SortField, bool) {
	var field item.SortField
	switch sortBy {
	case "title":
		field = item.SortByTitle
	case "author":
		field = item.SortByAuthor
	case "publication_date":
		field = item.SortByPublicationDate
	case "call_number":
		field = item.SortByCallNumber
	case "created_at":
		field = item.SortByCreatedAt
	case "updated_at":
		field = item.SortByUpdatedAt
	case "item_type":
		field = item.SortByItemType
	case "status":
		field = item.SortByStatus
	default:
		return item.SortByTitle, false
	}
	return field, sortOrder == "desc"
}

// newPagination derives the page metadata from the true total of the
// filtered set.
func newPagination(page, limit, total int) item.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return item.Pagination{
		Page:        page,
		Limit:       limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// itemFromCreateInput copies the client-settable fields into a fresh entity.
// Identity, status and audit fields are assigned by the caller.
func itemFromCreateInput(in item.CreateItemInput) item.Item {
	return item.Item{
		Title:           in.Title,
		Subtitle:        in.Subtitle,
		Author:          in.Author,
		Contributors:    in.Contributors,
		ISBN:            in.ISBN,
		ISSN:            in.ISSN,
		Publisher:       in.Publisher,
		PublicationDate: in.PublicationDate,
		Edition:         in.Edition,
		Pages:           in.Pages,
		Language:        in.Language,
		Collection:      in.Collection,
		ItemType:        in.ItemType,
		CallNumber:      in.CallNumber,
		Classification:  in.Classification,
		Location: item.Location{
			Floor:     in.Location.Floor,
			Section:   in.Location.Section,
			ShelfCode: in.Location.ShelfCode,
			Wing:      in.Location.Wing,
			Position:  in.Location.Position,
			Notes:     in.Location.Notes,
		},
		Barcode:         in.Barcode,
		AcquisitionDate: in.AcquisitionDate,
		Cost:            in.Cost,
		ConditionNotes:  in.ConditionNotes,
		Description:     in.Description,
		Subjects:        in.Subjects,
		DigitalURL:      in.DigitalURL,
	}
}

// itemFromUpdateInput builds the full-replacement entity: every mutable
// field comes from the input, identity and creation audit come from the
// stored record.
func itemFromUpdateInput(existing item.Item, in item.UpdateItemInput) item.Item {
	return item.Item{
		ID:              existing.ID,
		Title:           in.Title,
		Subtitle:        in.Subtitle,
		Author:          in.Author,
		Contributors:    in.Contributors,
		ISBN:            in.ISBN,
		ISSN:            in.ISSN,
		Publisher:       in.Publisher,
		PublicationDate: in.PublicationDate,
		Edition:         in.Edition,
		Pages:           in.Pages,
		Language:        in.Language,
		Collection:      in.Collection,
		ItemType:        in.ItemType,
		CallNumber:      in.CallNumber,
		Classification:  in.Classification,
		Location: item.Location{
			Floor:     in.Location.Floor,
			Section:   in.Location.Section,
			ShelfCode: in.Location.ShelfCode,
			Wing:      in.Location.Wing,
			Position:  in.Location.Position,
			Notes:     in.Location.Notes,
		},
		Status:          in.Status,
		Barcode:         in.Barcode,
		AcquisitionDate: in.AcquisitionDate,
		Cost:            in.Cost,
		ConditionNotes:  in.ConditionNotes,
		Description:     in.Description,
		Subjects:        in.Subjects,
		DigitalURL:      in.DigitalURL,
		CreatedAt:       existing.CreatedAt,
		CreatedBy:       existing.CreatedBy,
	}
}

// applyPatch overlays the supplied (non-nil) fields of a patch onto the
// stored record. Nil fields keep the stored value. Location is replaced
// wholesale when present — individual location fields cannot be patched.
func applyPatch(existing item.Item, in item.PatchItemInput) item.Item {
	merged := existing

	if in.Title != nil {
		merged.Title = *in.Title
	}
	if in.Subtitle != nil {
		merged.Subtitle = *in.Subtitle
	}
	if in.Author != nil {
		merged.Author = *in.Author
	}
	if in.Contributors != nil {
		merged.Contributors = *in.Contributors
	}
	if in.ISBN != nil {
		merged.ISBN = *in.ISBN
	}
	if in.ISSN != nil {
		merged.ISSN = *in.ISSN
	}
	if in.Publisher != nil {
		merged.Publisher = *in.Publisher
	}
	if in.PublicationDate != nil {
		merged.PublicationDate = in.PublicationDate
	}
	if in.Edition != nil {
		merged.Edition = *in.Edition
	}
	if in.Pages != nil {
		merged.Pages = *in.Pages
	}
	if in.Language != nil {
		merged.Language = *in.Language
	}
	if in.Collection != nil {
		merged.Collection = *in.Collection
	}
	if in.ItemType != nil {
		merged.ItemType = *in.ItemType
	}
	if in.CallNumber != nil {
		merged.CallNumber = *in.CallNumber
	}
	if in.Classification != nil {
		merged.Classification = *in.Classification
	}
	if in.Location != nil {
		merged.Location = item.Location{
			Floor:     in.Location.Floor,
			Section:   in.Location.Section,
			ShelfCode: in.Location.ShelfCode,
			Wing:      in.Location.Wing,
			Position:  in.Location.Position,
			Notes:     in.Location.Notes,
		}
	}
	if in.Status != nil {
		merged.Status = *in.Status
	}
	if in.Barcode != nil {
		merged.Barcode = *in.Barcode
	}
	if in.AcquisitionDate != nil {
		merged.AcquisitionDate = in.AcquisitionDate
	}
	if in.Cost != nil {
		merged.Cost = in.Cost
	}
	if in.ConditionNotes != nil {
		merged.ConditionNotes = *in.ConditionNotes
	}
	if in.Description != nil {
		merged.Description = *in.Description
	}
	if in.Subjects != nil {
		merged.Subjects = *in.Subjects
	}
	if in.DigitalURL != nil {
		merged.DigitalURL = *in.DigitalURL
	}

	return merged
}
