package postgre

import (
	"strings"
	"testing"
	"time"

	"library-catalog/internal/item"
	repo "library-catalog/internal/item/repository"
)

func intPtr(n int) *int { return &n }

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	t.Run("By ID", func(t *testing.T) {
		where, args := r.buildGetOneQuery(repo.GetOneItemOptions{ID: "item-1"})
		if where != "id = $1" {
			t.Errorf("unexpected where: %q", where)
		}
		if len(args) != 1 || args[0] != "item-1" {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("By ID And ISBN", func(t *testing.T) {
		where, args := r.buildGetOneQuery(repo.GetOneItemOptions{ID: "item-1", ISBN: "9780134190440"})
		if where != "id = $1 AND isbn = $2" {
			t.Errorf("unexpected where: %q", where)
		}
		if len(args) != 2 {
			t.Errorf("unexpected args: %v", args)
		}
	})

	t.Run("No Filters", func(t *testing.T) {
		where, args := r.buildGetOneQuery(repo.GetOneItemOptions{})
		if where != "1=1" || len(args) != 0 {
			t.Errorf("unexpected query: %q %v", where, args)
		}
	})
}

func TestBuildListQuery(t *testing.T) {
	r := &implRepository{}

	t.Run("Placeholders Stay Sequential", func(t *testing.T) {
		clause, args := r.buildListQuery(repo.ListItemsOptions{
			Title:               "go",
			Status:              "available",
			LocationFloor:       intPtr(2),
			PublicationYearFrom: intPtr(1990),
			SortBy:              item.SortByTitle,
			Limit:               20,
			Offset:              40,
		})
		for _, ph := range []string{"$1", "$2", "$3", "$4", "$5", "$6"} {
			if !strings.Contains(clause, ph) {
				t.Errorf("expected placeholder %s in %q", ph, clause)
			}
		}
		if len(args) != 6 {
			t.Errorf("expected 6 args, got %v", args)
		}
	})

	t.Run("Sort Column Is Interpolated From The Map Only", func(t *testing.T) {
		clause, _ := r.buildListQuery(repo.ListItemsOptions{SortBy: item.SortByPublicationDate, SortDesc: true})
		if !strings.Contains(clause, "ORDER BY publication_date DESC") {
			t.Errorf("unexpected clause: %q", clause)
		}

		clause, _ = r.buildListQuery(repo.ListItemsOptions{SortBy: item.SortField("; DROP TABLE")})
		if !strings.Contains(clause, "ORDER BY title ASC") {
			t.Errorf("unknown sort fields must fall back to title: %q", clause)
		}
	})

	t.Run("Zero Offset Omitted", func(t *testing.T) {
		clause, args := r.buildListQuery(repo.ListItemsOptions{SortBy: item.SortByTitle, Limit: 20})
		if strings.Contains(clause, "OFFSET") {
			t.Errorf("expected no OFFSET for the first page: %q", clause)
		}
		if len(args) != 1 {
			t.Errorf("expected a single limit arg, got %v", args)
		}
	})

	t.Run("Author Filter Excludes Authorless Rows", func(t *testing.T) {
		clause, _ := r.buildListQuery(repo.ListItemsOptions{Author: "Dickens", SortBy: item.SortByTitle})
		if !strings.Contains(clause, "author <> ''") {
			t.Errorf("expected the authorless guard: %q", clause)
		}
	})

	t.Run("Year Bounds Require A Date", func(t *testing.T) {
		clause, _ := r.buildListQuery(repo.ListItemsOptions{
			PublicationYearTo: intPtr(1990),
			SortBy:            item.SortByTitle,
		})
		if !strings.Contains(clause, "publication_date IS NOT NULL") {
			t.Errorf("expected the null-date guard: %q", clause)
		}
	})
}

func TestConvertHelpers(t *testing.T) {
	t.Run("List Round Trip", func(t *testing.T) {
		values := []string{"First Author", "Second Author"}
		joined := joinList(values)
		if joined != "First Author|Second Author" {
			t.Errorf("unexpected joined form: %q", joined)
		}
		split := splitList(joined)
		if len(split) != 2 || split[0] != values[0] || split[1] != values[1] {
			t.Errorf("unexpected round trip: %v", split)
		}
	})

	t.Run("Empty List", func(t *testing.T) {
		if joinList(nil) != "" {
			t.Errorf("nil list must join to empty")
		}
		if splitList("") != nil {
			t.Errorf("empty string must split to nil")
		}
	})

	t.Run("Null Date", func(t *testing.T) {
		if nullDate(nil).Valid {
			t.Error("nil date must be NULL")
		}
		ts := time.Date(2024, 5, 1, 17, 45, 12, 0, time.UTC)
		nd := nullDate(&ts)
		if !nd.Valid {
			t.Fatal("expected a valid date")
		}
		want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		if !nd.Time.Equal(want) {
			t.Errorf("expected midnight UTC, got %v", nd.Time)
		}
	})

	t.Run("Null Pages", func(t *testing.T) {
		if nullPages(0).Valid {
			t.Error("zero pages must be NULL")
		}
		if np := nullPages(320); !np.Valid || np.Int64 != 320 {
			t.Errorf("unexpected pages: %+v", np)
		}
	})

	t.Run("Null Float", func(t *testing.T) {
		if nullFloat(nil).Valid {
			t.Error("nil cost must be NULL")
		}
		zero := 0.0
		if nf := nullFloat(&zero); !nf.Valid || nf.Float64 != 0 {
			t.Errorf("zero cost is a value, not NULL: %+v", nf)
		}
	})
}
