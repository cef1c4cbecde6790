package memory_test

import (
	"context"
	"testing"
	"time"

	"library-catalog/internal/item"
	"library-catalog/internal/item/repository"
	"library-catalog/internal/item/repository/memory"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(n int) *int { return &n }

// seedCatalog inserts five items with distinct titles, authors, types and
// publication years.
func seedCatalog(t *testing.T) repository.Repository {
	t.Helper()
	repo := memory.New()
	ctx := context.Background()

	seed := []item.Item{
		{
			ID: "1", Title: "A Tale of Two Cities", Author: "Charles Dickens",
			ISBN: "9780141439600", ItemType: item.ItemTypeBook, Status: item.StatusAvailable,
			Collection: "fiction", CallNumber: "823.8 DIC",
			Location:        item.Location{Floor: 1, Section: "FIC"},
			PublicationDate: datePtr(1859, time.April, 30),
		},
		{
			ID: "2", Title: "Brave New World", Author: "Aldous Huxley",
			ISBN: "9780060850524", ItemType: item.ItemTypeBook, Status: item.StatusCheckedOut,
			Collection: "fiction", CallNumber: "823.912 HUX",
			Location:        item.Location{Floor: 1, Section: "FIC"},
			PublicationDate: datePtr(1932, time.February, 4),
		},
		{
			ID: "3", Title: "Computing Machinery and Intelligence", Author: "Alan Turing",
			ItemType: item.ItemTypeJournal, Status: item.StatusReferenceOnly,
			Collection: "science", CallNumber: "006.3 TUR",
			Location:        item.Location{Floor: 2, Section: "CS"},
			PublicationDate: datePtr(1950, time.October, 1),
		},
		{
			ID: "4", Title: "Design Patterns", Author: "Erich Gamma",
			ISBN: "9780201633610", ItemType: item.ItemTypeBook, Status: item.StatusAvailable,
			Collection: "science", CallNumber: "005.12 GAM",
			Location:        item.Location{Floor: 2, Section: "CS"},
			PublicationDate: datePtr(1994, time.October, 21),
		},
		{
			// No author, no publication date.
			ID: "5", Title: "Early County Maps", ItemType: item.ItemTypeMap,
			Status: item.StatusInProcessing, Collection: "archives", CallNumber: "912 EAR",
			Location: item.Location{Floor: -1, Section: "ARC"},
		},
	}
	for _, it := range seed {
		if _, err := repo.CreateItem(ctx, repository.CreateItemOptions{Item: it}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func ids(items []item.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalIDs(a []item.Item, want ...string) bool {
	got := ids(a)
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestGetOneItem(t *testing.T) {
	repo := seedCatalog(t)
	ctx := context.Background()

	t.Run("By ID", func(t *testing.T) {
		got, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != "Computing Machinery and Intelligence" {
			t.Errorf("unexpected item: %+v", got)
		}
	})

	t.Run("By ISBN", func(t *testing.T) {
		got, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ISBN: "9780201633610"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "4" {
			t.Errorf("expected item 4, got %+v", got)
		}
	})

	t.Run("Missing Is Zero Value, Not An Error", func(t *testing.T) {
		got, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "nope"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Errorf("expected zero item, got %+v", got)
		}
	})
}

func TestListItemsFilters(t *testing.T) {
	repo := seedCatalog(t)
	ctx := context.Background()

	run := func(opt repository.ListItemsOptions) ([]item.Item, int) {
		t.Helper()
		items, total, err := repo.ListItems(ctx, opt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return items, total
	}

	t.Run("Title Substring", func(t *testing.T) {
		items, total := run(repository.ListItemsOptions{Title: "World"})
		if total != 1 || !equalIDs(items, "2") {
			t.Errorf("expected item 2, got %v (total %d)", ids(items), total)
		}
	})

	t.Run("Author Filter Skips Authorless Items", func(t *testing.T) {
		items, total := run(repository.ListItemsOptions{Author: "n"})
		for _, it := range items {
			if it.Author == "" {
				t.Errorf("authorless item %s matched an author filter", it.ID)
			}
		}
		if total != 2 {
			t.Errorf("expected 2 matches, got %d", total)
		}
	})

	t.Run("Status And Type", func(t *testing.T) {
		items, total := run(repository.ListItemsOptions{
			ItemType: string(item.ItemTypeBook),
			Status:   string(item.StatusAvailable),
			SortBy:   item.SortByTitle,
		})
		if total != 2 || !equalIDs(items, "1", "4") {
			t.Errorf("expected items 1,4, got %v (total %d)", ids(items), total)
		}
	})

	t.Run("Collection", func(t *testing.T) {
		_, total := run(repository.ListItemsOptions{Collection: "science"})
		if total != 2 {
			t.Errorf("expected 2 science items, got %d", total)
		}
	})

	t.Run("Location Floor Including Basement", func(t *testing.T) {
		items, total := run(repository.ListItemsOptions{LocationFloor: intPtr(-1)})
		if total != 1 || !equalIDs(items, "5") {
			t.Errorf("expected item 5, got %v", ids(items))
		}
	})

	t.Run("Year Bounds Exclude Undated Items", func(t *testing.T) {
		items, total := run(repository.ListItemsOptions{
			PublicationYearFrom: intPtr(1900),
			SortBy:              item.SortByPublicationDate,
		})
		if total != 3 || !equalIDs(items, "2", "3", "4") {
			t.Errorf("expected items 2,3,4, got %v (total %d)", ids(items), total)
		}
	})

	t.Run("Year Range", func(t *testing.T) {
		items, total := run(repository.ListItemsOptions{
			PublicationYearFrom: intPtr(1930),
			PublicationYearTo:   intPtr(1960),
			SortBy:              item.SortByPublicationDate,
		})
		if total != 2 || !equalIDs(items, "2", "3") {
			t.Errorf("expected items 2,3, got %v", ids(items))
		}
	})

	t.Run("Filters Combine With AND", func(t *testing.T) {
		_, total := run(repository.ListItemsOptions{
			ItemType:   string(item.ItemTypeBook),
			Collection: "fiction",
			Status:     string(item.StatusCheckedOut),
		})
		if total != 1 {
			t.Errorf("expected 1 match, got %d", total)
		}
	})

	t.Run("No Match Yields Empty Slice", func(t *testing.T) {
		items, total := run(repository.ListItemsOptions{Title: "zzz"})
		if total != 0 || len(items) != 0 {
			t.Errorf("expected empty result, got %v", ids(items))
		}
	})
}

func TestListItemsSortAndWindow(t *testing.T) {
	repo := seedCatalog(t)
	ctx := context.Background()

	t.Run("Title Ascending Then Descending Reverse Each Other", func(t *testing.T) {
		asc, _, err := repo.ListItems(ctx, repository.ListItemsOptions{SortBy: item.SortByTitle})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		desc, _, err := repo.ListItems(ctx, repository.ListItemsOptions{SortBy: item.SortByTitle, SortDesc: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range asc {
			if asc[i].ID != desc[len(desc)-1-i].ID {
				t.Fatalf("descending is not the reverse of ascending: %v vs %v", ids(asc), ids(desc))
			}
		}
	})

	t.Run("Undated Items Sort First Ascending By Date", func(t *testing.T) {
		items, _, err := repo.ListItems(ctx, repository.ListItemsOptions{SortBy: item.SortByPublicationDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if items[0].ID != "5" {
			t.Errorf("expected the undated item first, got %v", ids(items))
		}
	})

	t.Run("Five Items Pages Of Three", func(t *testing.T) {
		page1, total, err := repo.ListItems(ctx, repository.ListItemsOptions{SortBy: item.SortByTitle, Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		page2, _, err := repo.ListItems(ctx, repository.ListItemsOptions{SortBy: item.SortByTitle, Limit: 3, Offset: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 5 || len(page1) != 3 || len(page2) != 2 {
			t.Errorf("expected 3+2 of 5, got %d+%d of %d", len(page1), len(page2), total)
		}
		if !equalIDs(page1, "1", "2", "3") || !equalIDs(page2, "4", "5") {
			t.Errorf("unexpected page split: %v / %v", ids(page1), ids(page2))
		}
	})

	t.Run("Offset Past The End", func(t *testing.T) {
		items, total, err := repo.ListItems(ctx, repository.ListItemsOptions{Limit: 20, Offset: 40})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 || total != 5 {
			t.Errorf("expected empty page with true total, got %v (total %d)", ids(items), total)
		}
	})
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Update Overwrites Wholesale", func(t *testing.T) {
		repo := seedCatalog(t)
		updated := item.Item{ID: "1", Title: "A Tale of Two Cities (Penguin)", ItemType: item.ItemTypeBook, Status: item.StatusReserved}
		got, err := repo.UpdateItem(ctx, repository.UpdateItemOptions{Item: updated})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Title != updated.Title || got.Status != item.StatusReserved {
			t.Errorf("update not applied: %+v", got)
		}
		stored, _ := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "1"})
		if stored.Author != "" {
			t.Errorf("wholesale update must clear omitted fields, got author %q", stored.Author)
		}
	})

	t.Run("Update Missing ID Is Zero Value", func(t *testing.T) {
		repo := seedCatalog(t)
		got, err := repo.UpdateItem(ctx, repository.UpdateItemOptions{Item: item.Item{ID: "nope"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Errorf("expected zero item, got %+v", got)
		}
	})

	t.Run("Delete Removes The Record", func(t *testing.T) {
		repo := seedCatalog(t)
		if err := repo.DeleteItem(ctx, "2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "2"})
		if got.ID != "" {
			t.Errorf("item 2 still present after delete")
		}
		_, total, _ := repo.ListItems(ctx, repository.ListItemsOptions{})
		if total != 4 {
			t.Errorf("expected 4 items, got %d", total)
		}
	})
}

func TestContextCancellation(t *testing.T) {
	repo := seedCatalog(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := repo.ListItems(ctx, repository.ListItemsOptions{}); err != context.Canceled {
		t.Errorf("expected context.Canceled from ListItems, got %v", err)
	}
	if _, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "1"}); err != context.Canceled {
		t.Errorf("expected context.Canceled from GetOneItem, got %v", err)
	}
	if err := repo.DeleteItem(ctx, "1"); err != context.Canceled {
		t.Errorf("expected context.Canceled from DeleteItem, got %v", err)
	}
}

func TestStoredRecordsDoNotAlias(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	contributors := []string{"First Contributor"}
	seeded := item.Item{ID: "x", Title: "Aliasing Check", Contributors: contributors}
	if _, err := repo.CreateItem(ctx, repository.CreateItemOptions{Item: seeded}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	contributors[0] = "Mutated"
	got, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Contributors[0] != "First Contributor" {
		t.Errorf("stored record aliases the caller's slice: %v", got.Contributors)
	}
}
