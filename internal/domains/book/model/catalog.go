package model

import (
	"fmt"
	"strings"
)

// SortKey is a whitelisted catalog ordering.
type SortKey string

const (
	SortSortTitle   SortKey = "sort_title"
	SortTitle       SortKey = "title"
	SortPrice       SortKey = "price"
	SortRating      SortKey = "rating"
	SortRatingCount SortKey = "rating_count"
	SortYear        SortKey = "year"
	SortPages       SortKey = "pages"
	SortAuthor      SortKey = "author"

	DefaultSort = SortSortTitle
)

var sortKeys = map[SortKey]bool{
	SortSortTitle:   true,
	SortTitle:       true,
	SortPrice:       true,
	SortRating:      true,
	SortRatingCount: true,
	SortYear:        true,
	SortPages:       true,
	SortAuthor:      true,
}

// ParseSortKey lowercases s and reports whether it names a known ordering.
func ParseSortKey(s string) (SortKey, bool) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	return key, sortKeys[key]
}

// CatalogQuery is the raw listing request: ?sort=&direction=&q=
type CatalogQuery struct {
	Sort         string
	HasSort      bool
	Direction    string
	HasDirection bool
	Search       string
	HasSearch    bool
}

// Catalog is a listing page's content.
type Catalog struct {
	Books          []Book
	SearchTerm     string
	CurrentSorting string
}

// Resolve turns the raw query into a filter and the current_sorting label.
// A direction without a sort is ignored, unknown sort keys fall back to the default ordering.
// Absent parts are reported as "None" in the label.
func (q CatalogQuery) Resolve() (BookFilter, string) {
	filter := BookFilter{Sort: DefaultSort}
	sortLabel, dirLabel := "None", "None"

	if q.HasSort {
		if key, ok := ParseSortKey(q.Sort); ok {
			filter.Sort = key
			sortLabel = string(key)

			if q.HasDirection {
				dirLabel = q.Direction
				filter.Desc = q.Direction == "desc"
			}
		}
	}

	if q.HasSearch {
		filter.Search = q.Search
	}

	return filter, fmt.Sprintf("%s_%s", sortLabel, dirLabel)
}
