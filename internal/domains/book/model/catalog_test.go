package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogQuery_Resolve(t *testing.T) {
	tests := []struct {
		name       string
		query      CatalogQuery
		wantSort   SortKey
		wantDesc   bool
		wantSearch string
		wantLabel  string
	}{
		{
			name:      "no parameters",
			wantSort:  DefaultSort,
			wantLabel: "None_None",
		},
		{
			name:      "sort without direction",
			query:     CatalogQuery{Sort: "price", HasSort: true},
			wantSort:  SortPrice,
			wantLabel: "price_None",
		},
		{
			name:      "sort descending",
			query:     CatalogQuery{Sort: "title", HasSort: true, Direction: "desc", HasDirection: true},
			wantSort:  SortTitle,
			wantDesc:  true,
			wantLabel: "title_desc",
		},
		{
			name:      "uppercase sort key",
			query:     CatalogQuery{Sort: "RATING", HasSort: true, Direction: "asc", HasDirection: true},
			wantSort:  SortRating,
			wantLabel: "rating_asc",
		},
		{
			name:      "direction without sort is ignored",
			query:     CatalogQuery{Direction: "desc", HasDirection: true},
			wantSort:  DefaultSort,
			wantLabel: "None_None",
		},
		{
			name:      "unknown sort key",
			query:     CatalogQuery{Sort: "isbn; DROP TABLE books", HasSort: true, Direction: "desc", HasDirection: true},
			wantSort:  DefaultSort,
			wantLabel: "None_None",
		},
		{
			name:       "search is kept verbatim",
			query:      CatalogQuery{Search: "  dune ", HasSearch: true},
			wantSort:   DefaultSort,
			wantSearch: "  dune ",
			wantLabel:  "None_None",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, label := tt.query.Resolve()
			assert.Equal(t, tt.wantSort, filter.Sort)
			assert.Equal(t, tt.wantDesc, filter.Desc)
			assert.Equal(t, tt.wantSearch, filter.Search)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}
