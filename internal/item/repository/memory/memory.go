// Package memory provides an in-memory Repository backend. It is used for
// local development (database.driver: memory) and as the store under the
// delivery-level tests. Semantics match the postgre backend.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"library-catalog/internal/item"
	repo "library-catalog/internal/item/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	items []item.Item
}

// New creates an empty in-memory Repository.
func New() repo.Repository {
	return &implRepository{}
}

// CreateItem appends a copy of the entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, cloneItem(opt.Item))
	return cloneItem(opt.Item), nil
}

// GetOneItem returns the first item matching all non-empty filters, or a
// zero-value Item when nothing matches.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if opt.ID != "" && r.items[i].ID != opt.ID {
			continue
		}
		if opt.ISBN != "" && r.items[i].ISBN != opt.ISBN {
			continue
		}
		return cloneItem(r.items[i]), nil
	}
	return item.Item{}, nil
}

// predicate reports whether an item satisfies one supplied filter.
type predicate func(item.Item) bool

// buildPredicates translates the supplied filters into match functions;
// absent filters contribute nothing. All predicates must hold (AND).
func buildPredicates(opt repo.ListItemsOptions) []predicate {
	var preds []predicate

	if opt.Title != "" {
		preds = append(preds, func(it item.Item) bool {
			return strings.Contains(it.Title, opt.Title)
		})
	}
	if opt.Author != "" {
		// Items without an author never match an author filter.
		preds = append(preds, func(it item.Item) bool {
			return it.Author != "" && strings.Contains(it.Author, opt.Author)
		})
	}
	if opt.ISBN != "" {
		preds = append(preds, func(it item.Item) bool { return it.ISBN == opt.ISBN })
	}
	if opt.ItemType != "" {
		preds = append(preds, func(it item.Item) bool { return string(it.ItemType) == opt.ItemType })
	}
	if opt.Status != "" {
		preds = append(preds, func(it item.Item) bool { return string(it.Status) == opt.Status })
	}
	if opt.Collection != "" {
		preds = append(preds, func(it item.Item) bool { return it.Collection == opt.Collection })
	}
	if opt.LocationFloor != nil {
		floor := *opt.LocationFloor
		preds = append(preds, func(it item.Item) bool { return it.Location.Floor == floor })
	}
	if opt.LocationSection != "" {
		preds = append(preds, func(it item.Item) bool { return it.Location.Section == opt.LocationSection })
	}
	if opt.CallNumber != "" {
		preds = append(preds, func(it item.Item) bool {
			return strings.Contains(it.CallNumber, opt.CallNumber)
		})
	}
	// Year bounds exclude records without a publication date.
	if opt.PublicationYearFrom != nil {
		from := *opt.PublicationYearFrom
		preds = append(preds, func(it item.Item) bool {
			return it.PublicationDate != nil && it.PublicationDate.Year() >= from
		})
	}
	if opt.PublicationYearTo != nil {
		to := *opt.PublicationYearTo
		preds = append(preds, func(it item.Item) bool {
			return it.PublicationDate != nil && it.PublicationDate.Year() <= to
		})
	}

	return preds
}

func matchesAll(it item.Item, preds []predicate) bool {
	for _, p := range preds {
		if !p(it) {
			return false
		}
	}
	return true
}

// ListItems filters, sorts and windows the stored items, returning the page
// plus the total count of the filtered set.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	preds := buildPredicates(opt)
	var filtered []item.Item
	for i := range r.items {
		if matchesAll(r.items[i], preds) {
			filtered = append(filtered, cloneItem(r.items[i]))
		}
	}
	total := len(filtered)

	sortItems(filtered, opt.SortBy, opt.SortDesc)

	start := opt.Offset
	if start > total {
		start = total
	}
	end := total
	if opt.Limit > 0 && start+opt.Limit < end {
		end = start + opt.Limit
	}
	return filtered[start:end], total, nil
}

// sortItems orders the slice by the resolved sort field. The stable sort
// keeps insertion order between equal keys; no secondary key is applied.
func sortItems(items []item.Item, field item.SortField, desc bool) {
	less := lessFunc(field)
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func lessFunc(field item.SortField) func(a, b item.Item) bool {
	switch field {
	case item.SortByAuthor:
		return func(a, b item.Item) bool { return a.Author < b.Author }
	case item.SortByPublicationDate:
		return func(a, b item.Item) bool {
			return dateKey(a.PublicationDate).Before(dateKey(b.PublicationDate))
		}
	case item.SortByCallNumber:
		return func(a, b item.Item) bool { return a.CallNumber < b.CallNumber }
	case item.SortByCreatedAt:
		return func(a, b item.Item) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case item.SortByUpdatedAt:
		return func(a, b item.Item) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case item.SortByItemType:
		return func(a, b item.Item) bool { return a.ItemType < b.ItemType }
	case item.SortByStatus:
		return func(a, b item.Item) bool { return a.Status < b.Status }
	default:
		return func(a, b item.Item) bool { return a.Title < b.Title }
	}
}

func dateKey(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// UpdateItem overwrites the stored entity wholesale. Returns zero-value Item
// when the id does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == opt.Item.ID {
			r.items[i] = cloneItem(opt.Item)
			return cloneItem(opt.Item), nil
		}
	}
	return item.Item{}, nil
}

// DeleteItem removes an item by ID. Deleting a missing id is a no-op.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// cloneItem deep-copies slices and pointers so callers never alias the
// stored record.
func cloneItem(it item.Item) item.Item {
	out := it
	if it.Contributors != nil {
		out.Contributors = append([]string(nil), it.Contributors...)
	}
	if it.Subjects != nil {
		out.Subjects = append([]string(nil), it.Subjects...)
	}
	if it.PublicationDate != nil {
		t := *it.PublicationDate
		out.PublicationDate = &t
	}
	if it.AcquisitionDate != nil {
		t := *it.AcquisitionDate
		out.AcquisitionDate = &t
	}
	if it.Cost != nil {
		c := *it.Cost
		out.Cost = &c
	}
	return out
}
