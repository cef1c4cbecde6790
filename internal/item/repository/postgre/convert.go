package postgre

import (
	"database/sql"
	"strings"
	"time"

	"library-catalog/internal/item"
)

// List-valued fields are persisted as pipe-joined strings and date-only
// fields as midnight-UTC timestamps, for compatibility with the existing
// table layout.

const listSeparator = "|"

func joinList(values []string) string {
	return strings.Join(values, listSeparator)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, listSeparator)
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	y, m, d := t.UTC().Date()
	return sql.NullTime{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullPages(pages int) sql.NullInt64 {
	if pages == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(pages), Valid: true}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem reads one row in itemColumns order into a domain Item.
func scanItem(row rowScanner) (item.Item, error) {
	var (
		it              item.Item
		contributors    string
		subjects        string
		publicationDate sql.NullTime
		acquisitionDate sql.NullTime
		pages           sql.NullInt64
		cost            sql.NullFloat64
	)

	err := row.Scan(
		&it.ID, &it.Title, &it.Subtitle, &it.Author, &contributors,
		&it.ISBN, &it.ISSN, &it.Publisher, &publicationDate, &it.Edition,
		&pages, &it.Language, &it.Collection, &it.ItemType, &it.CallNumber,
		&it.Classification,
		&it.Location.Floor, &it.Location.Section, &it.Location.ShelfCode,
		&it.Location.Wing, &it.Location.Position, &it.Location.Notes,
		&it.Status, &it.Barcode, &acquisitionDate, &cost,
		&it.ConditionNotes, &it.Description, &subjects, &it.DigitalURL,
		&it.CreatedAt, &it.UpdatedAt, &it.CreatedBy, &it.UpdatedBy,
	)
	if err != nil {
		return item.Item{}, err
	}

	it.Contributors = splitList(contributors)
	it.Subjects = splitList(subjects)
	if publicationDate.Valid {
		t := publicationDate.Time.UTC()
		it.PublicationDate = &t
	}
	if acquisitionDate.Valid {
		t := acquisitionDate.Time.UTC()
		it.AcquisitionDate = &t
	}
	if pages.Valid {
		it.Pages = int(pages.Int64)
	}
	if cost.Valid {
		c := cost.Float64
		it.Cost = &c
	}
	return it, nil
}
