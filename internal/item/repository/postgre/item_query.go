package postgre

import (
	"fmt"
	"strings"

	"library-catalog/internal/item"
	repo "library-catalog/internal/item/repository"
)

// itemColumns is the canonical column order; scanItem depends on it.
const itemColumns = `id, title, subtitle, author, contributors, isbn, issn,
	publisher, publication_date, edition, pages, language, collection,
	item_type, call_number, classification,
	location_floor, location_section, location_shelf_code,
	location_wing, location_position, location_notes,
	status, barcode, acquisition_date, cost,
	condition_notes, description, subjects, digital_url,
	created_at, updated_at, created_by, updated_by`

// sortColumns maps resolved sort fields to columns. Keys are the only values
// ever interpolated into ORDER BY.
var sortColumns = map[item.SortField]string{
	item.SortByTitle:           "title",
	item.SortByAuthor:          "author",
	item.SortByPublicationDate: "publication_date",
	item.SortByCallNumber:      "call_number",
	item.SortByCreatedAt:       "created_at",
	item.SortByUpdatedAt:       "updated_at",
	item.SortByItemType:        "item_type",
	item.SortByStatus:          "status",
}

// buildGetOneQuery builds WHERE clause + args for GetOneItem.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.ISBN != "" {
		conditions = append(conditions, fmt.Sprintf("isbn = $%d", idx))
		args = append(args, opt.ISBN)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListConditions builds the filter conditions shared by the count and
// page queries. Absent filters impose no constraint; supplied filters are
// combined with AND.
func (r *implRepository) buildListConditions(opt repo.ListItemsOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	add := func(cond string, val any) {
		conditions = append(conditions, fmt.Sprintf(cond, idx))
		args = append(args, val)
		idx++
	}

	if opt.Title != "" {
		add("title LIKE '%%' || $%d || '%%'", opt.Title)
	}
	if opt.Author != "" {
		// Items without an author never match an author filter.
		add("author <> '' AND author LIKE '%%' || $%d || '%%'", opt.Author)
	}
	if opt.ISBN != "" {
		add("isbn = $%d", opt.ISBN)
	}
	if opt.ItemType != "" {
		add("item_type = $%d", opt.ItemType)
	}
	if opt.Status != "" {
		add("status = $%d", opt.Status)
	}
	if opt.Collection != "" {
		add("collection = $%d", opt.Collection)
	}
	if opt.LocationFloor != nil {
		add("location_floor = $%d", *opt.LocationFloor)
	}
	if opt.LocationSection != "" {
		add("location_section = $%d", opt.LocationSection)
	}
	if opt.CallNumber != "" {
		add("call_number LIKE '%%' || $%d || '%%'", opt.CallNumber)
	}
	// Year bounds exclude records without a publication date.
	if opt.PublicationYearFrom != nil {
		add("publication_date IS NOT NULL AND EXTRACT(YEAR FROM publication_date) >= $%d", *opt.PublicationYearFrom)
	}
	if opt.PublicationYearTo != nil {
		add("publication_date IS NOT NULL AND EXTRACT(YEAR FROM publication_date) <= $%d", *opt.PublicationYearTo)
	}

	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting items.
func (r *implRepository) buildCountQuery(opt repo.ListItemsOptions) (string, []any) {
	conditions, args := r.buildListConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string

	conditions, args := r.buildListConditions(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting. No secondary key: ties keep store-native order.
	column, ok := sortColumns[opt.SortBy]
	if !ok {
		column = "title"
	}
	direction := "ASC"
	if opt.SortDesc {
		direction = "DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s %s", column, direction))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
