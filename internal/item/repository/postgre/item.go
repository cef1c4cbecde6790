package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"library-catalog/internal/item"
	repo "library-catalog/internal/item/repository"
)

// CreateItem inserts a new catalog row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	query := fmt.Sprintf(`
		INSERT INTO library_items (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27,
			$28, $29, $30, $31, $32, $33, $34)
		RETURNING %s`, itemColumns, itemColumns)

	created, err := scanItem(r.db.QueryRowContext(ctx, query, itemArgs(opt.Item)...))
	if err != nil {
		return item.Item{}, r.storeErr(ctx, "CreateItem", err, repo.ErrFailedToInsert)
	}
	return created, nil
}

// GetOneItem retrieves a single item by the provided filters (AND condition).
// Returns zero-value Item (ID == "") when not found — do NOT return error for
// not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM library_items WHERE %s LIMIT 1", itemColumns, mods)

	found, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		return item.Item{}, r.storeErr(ctx, "GetOneItem", err, repo.ErrFailedToGet)
	}
	return found, nil
}

// ListItems returns one page of the filtered, sorted set plus the total count
// of the filtered set.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM library_items WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, r.storeErr(ctx, "ListItems count", err, repo.ErrFailedToList)
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM library_items %s", itemColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, r.storeErr(ctx, "ListItems", err, repo.ErrFailedToList)
	}
	defer rows.Close()

	var items []item.Item
	for rows.Next() {
		it, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, 0, r.storeErr(ctx, "ListItems scan", scanErr, repo.ErrFailedToList)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.storeErr(ctx, "ListItems rows", err, repo.ErrFailedToList)
	}
	return items, total, nil
}

// UpdateItem overwrites every mutable column of an item and returns the
// stored entity. Returns zero-value Item when the id does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	query := fmt.Sprintf(`
		UPDATE library_items SET
			title = $2, subtitle = $3, author = $4, contributors = $5,
			isbn = $6, issn = $7, publisher = $8, publication_date = $9,
			edition = $10, pages = $11, language = $12, collection = $13,
			item_type = $14, call_number = $15, classification = $16,
			location_floor = $17, location_section = $18,
			location_shelf_code = $19, location_wing = $20,
			location_position = $21, location_notes = $22,
			status = $23, barcode = $24, acquisition_date = $25, cost = $26,
			condition_notes = $27, description = $28, subjects = $29,
			digital_url = $30, created_at = $31, updated_at = $32,
			created_by = $33, updated_by = $34
		WHERE id = $1
		RETURNING %s`, itemColumns)

	updated, err := scanItem(r.db.QueryRowContext(ctx, query, itemArgs(opt.Item)...))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, nil
	}
	if err != nil {
		return item.Item{}, r.storeErr(ctx, "UpdateItem", err, repo.ErrFailedToUpdate)
	}
	return updated, nil
}

// DeleteItem removes an item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM library_items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return r.storeErr(ctx, "DeleteItem", err, repo.ErrFailedToDelete)
	}
	return nil
}

// itemArgs flattens an Item into the itemColumns parameter order.
func itemArgs(it item.Item) []any {
	return []any{
		it.ID, it.Title, it.Subtitle, it.Author, joinList(it.Contributors),
		it.ISBN, it.ISSN, it.Publisher, nullDate(it.PublicationDate),
		it.Edition, nullPages(it.Pages), it.Language, it.Collection,
		string(it.ItemType), it.CallNumber, string(it.Classification),
		it.Location.Floor, it.Location.Section, it.Location.ShelfCode,
		it.Location.Wing, it.Location.Position, it.Location.Notes,
		string(it.Status), it.Barcode, nullDate(it.AcquisitionDate),
		nullFloat(it.Cost), it.ConditionNotes, it.Description,
		joinList(it.Subjects), it.DigitalURL,
		it.CreatedAt, it.UpdatedAt, it.CreatedBy, it.UpdatedBy,
	}
}

// storeErr keeps caller cancellation distinguishable from store failures:
// context errors pass through untouched, everything else is logged and
// collapsed into the repository sentinel.
func (r *implRepository) storeErr(ctx context.Context, method string, err, fallback error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
	return fallback
}
