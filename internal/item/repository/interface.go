package repository

import (
	"context"

	"library-catalog/internal/item"
)

// Repository is the composed interface for the catalog data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Not-found is reported as a zero-value Item with a nil error, never as an
// error; callers decide whether absence is exceptional.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
