package usecase_test

import (
	"context"
	"errors"
	"testing"

	"library-catalog/internal/item"
	"library-catalog/internal/item/repository"
	"library-catalog/internal/item/usecase"
	"library-catalog/internal/model"
)

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "librarian@local"}

	t.Run("Assigns Identity And Defaults", func(t *testing.T) {
		var inserted item.Item
		repo := &mockRepo{
			createFunc: func(opt repository.CreateItemOptions) (item.Item, error) {
				inserted = opt.Item
				return opt.Item, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})

		out, err := uc.Create(context.Background(), sc, item.CreateItemInput{
			Title:    "The Go Programming Language",
			Author:   "Alan Donovan",
			ItemType: item.ItemTypeBook,
			ISBN:     "9780134190440",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inserted.ID == "" {
			t.Error("expected a generated ID")
		}
		if inserted.Status != item.StatusAvailable {
			t.Errorf("expected status %q, got %q", item.StatusAvailable, inserted.Status)
		}
		if inserted.CreatedAt.IsZero() || !inserted.CreatedAt.Equal(inserted.UpdatedAt) {
			t.Errorf("expected matching creation timestamps, got %v / %v", inserted.CreatedAt, inserted.UpdatedAt)
		}
		if inserted.CreatedBy != sc.UserID || inserted.UpdatedBy != sc.UserID {
			t.Errorf("expected audit user %q, got %q / %q", sc.UserID, inserted.CreatedBy, inserted.UpdatedBy)
		}
		if out.Item.ID != inserted.ID {
			t.Errorf("expected returned item to match stored item")
		}
	})

	t.Run("Duplicate ISBN Conflict", func(t *testing.T) {
		repo := &mockRepo{
			getOneFunc: func(opt repository.GetOneItemOptions) (item.Item, error) {
				if opt.ISBN == "9780134190440" {
					return item.Item{ID: "existing-id", ISBN: opt.ISBN}, nil
				}
				return item.Item{}, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})

		_, err := uc.Create(context.Background(), sc, item.CreateItemInput{
			Title:    "Duplicate",
			ItemType: item.ItemTypeBook,
			ISBN:     "9780134190440",
		})
		if !errors.Is(err, item.ErrItemAlreadyExists) {
			t.Errorf("expected ErrItemAlreadyExists, got %v", err)
		}
	})

	t.Run("Empty ISBN Skips Uniqueness Check", func(t *testing.T) {
		lookups := 0
		repo := &mockRepo{
			getOneFunc: func(opt repository.GetOneItemOptions) (item.Item, error) {
				lookups++
				return item.Item{}, nil
			},
		}
		uc := usecase.New(repo, &mockLogger{})

		_, err := uc.Create(context.Background(), sc, item.CreateItemInput{
			Title:    "No ISBN",
			ItemType: item.ItemTypeManuscript,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lookups != 0 {
			t.Errorf("expected no ISBN lookup, got %d", lookups)
		}
	})

	t.Run("Store Error Propagates", func(t *testing.T) {
		storeErr := errors.New("insert failed")
		repo := &mockRepo{
			createFunc: func(opt repository.CreateItemOptions) (item.Item, error) {
				return item.Item{}, storeErr
			},
		}
		uc := usecase.New(repo, &mockLogger{})

		_, err := uc.Create(context.Background(), sc, item.CreateItemInput{
			Title:    "Broken",
			ItemType: item.ItemTypeBook,
		})
		if !errors.Is(err, storeErr) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}
