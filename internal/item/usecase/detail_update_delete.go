package usecase

import (
	"context"
	"time"

	"library-catalog/internal/item"
	repo "library-catalog/internal/item/repository"
	"library-catalog/internal/model"
)

// Detail retrieves a single item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if found.ID == "" {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: found}, nil
}

// Update replaces every mutable field of an item, status included. An item
// may keep its own ISBN, but taking another item's ISBN is a conflict.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if existing.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	if err := uc.checkISBNCollision(ctx, input.ID, input.ISBN); err != nil {
		return item.UpdateItemOutput{}, err
	}

	entity := itemFromUpdateInput(existing, input)
	entity.UpdatedAt = time.Now().UTC()
	entity.UpdatedBy = sc.UserID

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: entity})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if updated.ID == "" {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}
	return item.UpdateItemOutput{Item: updated}, nil
}

// Patch overwrites only the supplied fields of an item; nil fields keep
// their stored values. ISBN collision rules match Update.
func (uc *implUseCase) Patch(ctx context.Context, sc model.Scope, input item.PatchItemInput) (item.PatchItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Patch GetOneItem: %v", err)
		return item.PatchItemOutput{}, err
	}
	if existing.ID == "" {
		return item.PatchItemOutput{}, item.ErrItemNotFound
	}

	if input.ISBN != nil {
		if err := uc.checkISBNCollision(ctx, input.ID, *input.ISBN); err != nil {
			return item.PatchItemOutput{}, err
		}
	}

	entity := applyPatch(existing, input)
	entity.UpdatedAt = time.Now().UTC()
	entity.UpdatedBy = sc.UserID

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{Item: entity})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Patch UpdateItem: %v", err)
		return item.PatchItemOutput{}, err
	}
	if updated.ID == "" {
		return item.PatchItemOutput{}, item.ErrItemNotFound
	}
	return item.PatchItemOutput{Item: updated}, nil
}

// Delete removes an item by ID. Checked-out items are protected: the caller
// must check the item in (or change its status) first.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return item.ErrItemNotFound
	}
	if !item.CanDelete(existing.Status) {
		return item.ErrCannotDeleteCheckedOut
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}

// checkISBNCollision rejects an ISBN that belongs to a different item.
// Re-submitting a record's own ISBN is permitted; an empty ISBN never
// collides.
func (uc *implUseCase) checkISBNCollision(ctx context.Context, id, isbn string) error {
	if isbn == "" {
		return nil
	}
	other, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ISBN: isbn})
	if err != nil {
		uc.l.Errorf(ctx, "uc.checkISBNCollision GetOneItem: %v", err)
		return err
	}
	if other.ID != "" && other.ID != id {
		return item.ErrISBNAlreadyExists
	}
	return nil
}
