package item

import (
	"context"

	"library-catalog/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Item CRUD
	Create(ctx context.Context, sc model.Scope, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateItemInput) (UpdateItemOutput, error)
	Patch(ctx context.Context, sc model.Scope, input PatchItemInput) (PatchItemOutput, error)
	Delete(ctx context.Context, id string) error
}
