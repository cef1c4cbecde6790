package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-catalog/internal/item"
	repo "library-catalog/internal/item/repository"
	"library-catalog/internal/model"
)

// Create registers a new catalog item. A supplied ISBN must not exist
// anywhere in the store. Identity and audit fields are assigned here; new
// items always start as available.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if input.ISBN != "" {
		existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ISBN: input.ISBN})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
			return item.CreateItemOutput{}, err
		}
		if existing.ID != "" {
			return item.CreateItemOutput{}, item.ErrItemAlreadyExists
		}
	}

	now := time.Now().UTC()
	entity := itemFromCreateInput(input)
	entity.ID = uuid.NewString()
	entity.Status = item.StatusAvailable
	entity.CreatedAt = now
	entity.UpdatedAt = now
	entity.CreatedBy = sc.UserID
	entity.UpdatedBy = sc.UserID

	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{Item: entity})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}
