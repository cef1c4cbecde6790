package usecase_test

import (
	"context"

	"library-catalog/internal/item"
	"library-catalog/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any) {}

// Mock repository with overridable behavior per method.
type mockRepo struct {
	createFunc func(opt repository.CreateItemOptions) (item.Item, error)
	getOneFunc func(opt repository.GetOneItemOptions) (item.Item, error)
	listFunc   func(opt repository.ListItemsOptions) ([]item.Item, int, error)
	updateFunc func(opt repository.UpdateItemOptions) (item.Item, error)
	deleteFunc func(id string) error
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (item.Item, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return opt.Item, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (item.Item, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return item.Item{}, nil
}

func (m *mockRepo) ListItems(ctx context.Context, opt repository.ListItemsOptions) ([]item.Item, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (item.Item, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return opt.Item, nil
}

func (m *mockRepo) DeleteItem(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func strPtr(s string) *string { return &s }
