package usecase

import (
	"context"

	"library-catalog/internal/item"
	repo "library-catalog/internal/item/repository"
)

// List returns one page of the filtered and sorted catalog plus pagination
// metadata. A page past the end of the set is not an error: it yields an
// empty slice with true totals.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	sortBy, sortDesc := resolveSort(input.SortBy, input.SortOrder)

	items, total, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Title:               input.Title,
		Author:              input.Author,
		ISBN:                input.ISBN,
		ItemType:            input.ItemType,
		Status:              input.Status,
		Collection:          input.Collection,
		LocationFloor:       input.LocationFloor,
		LocationSection:     input.LocationSection,
		CallNumber:          input.CallNumber,
		PublicationYearFrom: input.PublicationYearFrom,
		PublicationYearTo:   input.PublicationYearTo,
		SortBy:              sortBy,
		SortDesc:            sortDesc,
		Limit:               input.Limit,
		Offset:              (input.Page - 1) * input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items:      items,
		Pagination: newPagination(input.Page, input.Limit, total),
	}, nil
}
