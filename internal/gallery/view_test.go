package gallery

import (
	"reflect"
	"testing"
	"time"

	"sairajtravels/internal/models"
)

func galleryFixture() []models.GalleryItem {
	ts := func(day int) *time.Time {
		t := time.Date(2026, time.July, day, 12, 0, 0, 0, time.UTC)
		return &t
	}
	return []models.GalleryItem{
		{ID: 1, Title: "Urbania exterior", Category: "Fleet", CreatedAt: ts(3)},
		{ID: 2, Title: "Mahabaleshwar trip", Category: "Tours", IsFeatured: true, CreatedAt: ts(10)},
		{ID: 3, Title: "Team at office", Category: "Team", CreatedAt: ts(1)},
		{ID: 4, Title: "Night drive", Description: "Urbania on the expressway", Category: "Fleet", VideoURL: "https://example.com/v.mp4", CreatedAt: ts(7)},
		{ID: 5, Title: "Ellora caves", Category: "Tours", CreatedAt: nil},
	}
}

func ids(items []models.GalleryItem) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestFilteredIsIdempotent(t *testing.T) {
	t.Parallel()

	v := NewView(galleryFixture())
	v.SetCategory("Fleet")
	v.SetQuery("urbania")
	v.SetSort(SortNewest)

	first := ids(v.Filtered())
	second := ids(v.Filtered())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-applying the same pipeline changed the result: %v vs %v", first, second)
	}
}

func TestCategoryAndQueryCompose(t *testing.T) {
	t.Parallel()

	v := NewView(galleryFixture())
	v.SetCategory("Fleet")
	if got := ids(v.Filtered()); !reflect.DeepEqual(got, []int{1, 4}) {
		t.Fatalf("category filter = %v", got)
	}

	// Query searches description as well as title.
	v.SetQuery("expressway")
	if got := ids(v.Filtered()); !reflect.DeepEqual(got, []int{4}) {
		t.Errorf("query over description = %v", got)
	}

	v.SetCategory(CategoryAll)
	v.SetQuery("")
	if got := v.Filtered(); len(got) != 5 {
		t.Errorf("cleared filters returned %d items", len(got))
	}
}

func TestSortChangesOrderNotMembership(t *testing.T) {
	t.Parallel()

	v := NewView(galleryFixture())
	v.SetCategory("Tours")

	before := ids(v.Filtered())
	v.SetSort(SortNewest)
	after := ids(v.Filtered())

	if len(before) != len(after) {
		t.Fatalf("sort changed membership: %v vs %v", before, after)
	}
	seen := map[int]bool{}
	for _, id := range before {
		seen[id] = true
	}
	for _, id := range after {
		if !seen[id] {
			t.Fatalf("sort introduced item %d", id)
		}
	}
}

func TestSortOrders(t *testing.T) {
	t.Parallel()

	v := NewView(galleryFixture())

	v.SetSort(SortFeatured)
	if got := ids(v.Filtered()); got[0] != 2 {
		t.Errorf("featured sort = %v, want item 2 first", got)
	}

	v.SetSort(SortNewest)
	got := ids(v.Filtered())
	if got[0] != 2 || got[len(got)-1] != 5 {
		t.Errorf("newest sort = %v, want 2 first and undated 5 last", got)
	}

	v.SetSort(SortName)
	if got := ids(v.Filtered()); got[0] != 5 {
		t.Errorf("name sort = %v, want Ellora first", got)
	}
}

func TestVisibleWindowGrows(t *testing.T) {
	t.Parallel()

	items := make([]models.GalleryItem, 30)
	for i := range items {
		items[i] = models.GalleryItem{ID: i + 1, Title: "Item", Category: "Fleet"}
	}

	v := NewView(items)
	if got := v.Visible(); len(got) != DefaultPageSize {
		t.Fatalf("initial window = %d, want %d", len(got), DefaultPageSize)
	}
	if !v.HasMore() {
		t.Fatal("HasMore = false with items beyond the window")
	}

	v.LoadMore()
	if got := v.Visible(); len(got) != 2*DefaultPageSize {
		t.Errorf("window after LoadMore = %d", len(got))
	}

	v.LoadMore()
	if got := v.Visible(); len(got) != 30 {
		t.Errorf("window past the end = %d, want all 30", len(got))
	}
	if v.HasMore() {
		t.Error("HasMore = true after covering everything")
	}
}

func TestChangingFiltersRestartsWindow(t *testing.T) {
	t.Parallel()

	items := make([]models.GalleryItem, 30)
	for i := range items {
		items[i] = models.GalleryItem{ID: i + 1, Title: "Item", Category: "Fleet"}
	}

	v := NewView(items)
	v.LoadMore()
	v.SetCategory("Fleet")
	if got := v.Visible(); len(got) != DefaultPageSize {
		t.Errorf("window after filter change = %d, want restart at %d", len(got), DefaultPageSize)
	}
}

func TestCategoriesDistinctWithAllFirst(t *testing.T) {
	t.Parallel()

	v := NewView(galleryFixture())
	got := v.Categories()
	want := []string{CategoryAll, "Fleet", "Tours", "Team"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}
