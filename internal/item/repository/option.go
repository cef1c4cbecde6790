package repository

import "library-catalog/internal/item"

// CreateItemOptions holds the fully-populated entity to insert. The use case
// assigns identity and audit fields before the record reaches the store.
type CreateItemOptions struct {
	Item item.Item
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID   string
	ISBN string
}

// ListItemsOptions holds filter, sort and pagination parameters for listing.
// Zero-value filters impose no constraint.
type ListItemsOptions struct {
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

	SortBy   item.SortField
	SortDesc bool

	Limit  int
	Offset int
}

// UpdateItemOptions holds the fully-resolved entity to persist. Patch
// semantics (merging supplied fields over stored values) are applied by the
// use case before this point; the store writes every mutable column.
type UpdateItemOptions struct {
	Item item.Item
}
