package gallery

import (
	"sort"
	"strings"

	"sairajtravels/internal/models"
	"sairajtravels/internal/resource"
)

type SortKey string

const (
	SortFeatured SortKey = "featured"
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
	SortName     SortKey = "name"
)

// DefaultPageSize is the load-more increment of the visible window.
const DefaultPageSize = 12

// CategoryAll disables category filtering.
const CategoryAll = "All"

// View is a pure client-side pipeline over an already-fetched collection:
// category filter, then text search, then stable sort, then a growing
// visible-count window. Re-applying the same filters is idempotent, and
// changing only the sort key never changes which items are in the filtered
// set, only their order.
type View struct {
	items    []models.GalleryItem
	category string
	query    string
	sortBy   SortKey
	visible  int
	pageSize int
}

func NewView(items []models.GalleryItem) *View {
	return &View{
		items:    items,
		category: CategoryAll,
		sortBy:   SortFeatured,
		visible:  DefaultPageSize,
		pageSize: DefaultPageSize,
	}
}

// SetItems replaces the underlying collection, e.g. after a refetch.
func (v *View) SetItems(items []models.GalleryItem) {
	v.items = items
	v.visible = v.pageSize
}

// SetCategory filters to one exact category, or everything for CategoryAll
// and the empty string. Restarts the visible window.
func (v *View) SetCategory(category string) {
	v.category = category
	v.visible = v.pageSize
}

// SetQuery searches title and description, case-insensitive substring.
// Restarts the visible window.
func (v *View) SetQuery(query string) {
	v.query = query
	v.visible = v.pageSize
}

// SetSort reorders without touching membership or the window.
func (v *View) SetSort(key SortKey) {
	v.sortBy = key
}

func (v *View) Category() string { return v.category }
func (v *View) Query() string    { return v.query }
func (v *View) SortBy() SortKey  { return v.sortBy }

// Filtered returns the full filtered and sorted collection.
func (v *View) Filtered() []models.GalleryItem {
	filtered := make([]models.GalleryItem, 0, len(v.items))
	for _, item := range v.items {
		if !v.matchesCategory(item) {
			continue
		}
		if !resource.MatchesQuery(v.query, item.Title, item.Description) {
			continue
		}
		filtered = append(filtered, item)
	}

	v.sortItems(filtered)
	return filtered
}

// Visible returns the current window over the filtered collection.
func (v *View) Visible() []models.GalleryItem {
	filtered := v.Filtered()
	if v.visible >= len(filtered) {
		return filtered
	}
	return filtered[:v.visible]
}

// HasMore reports whether the window has not yet covered the filtered set.
func (v *View) HasMore() bool {
	return v.visible < len(v.Filtered())
}

// LoadMore grows the window by one page. Called on the explicit button or
// on scroll-near-bottom.
func (v *View) LoadMore() {
	v.visible += v.pageSize
}

// Categories lists the distinct categories present, for the filter bar.
func (v *View) Categories() []string {
	seen := make(map[string]bool)
	categories := []string{CategoryAll}
	for _, item := range v.items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

func (v *View) matchesCategory(item models.GalleryItem) bool {
	if v.category == "" || v.category == CategoryAll {
		return true
	}
	return item.Category == v.category
}

func (v *View) sortItems(items []models.GalleryItem) {
	switch v.sortBy {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return createdAfter(items[i], items[j])
		})
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return createdAfter(items[j], items[i])
		})
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
	default: // SortFeatured
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].IsFeatured && !items[j].IsFeatured
		})
	}
}

// createdAfter orders items by creation time, newest first; items without a
// timestamp sink to the end.
func createdAfter(a, b models.GalleryItem) bool {
	if a.CreatedAt == nil {
		return false
	}
	if b.CreatedAt == nil {
		return true
	}
	return a.CreatedAt.After(*b.CreatedAt)
}
