package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore-web/internal/domains/book/model"
)

func TestBuildListQuery_Default(t *testing.T) {
	query, args := buildListQuery(model.BookFilter{Sort: model.DefaultSort})

	assert.Empty(t, args)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY LOWER(b.sort_title) ASC, b.id ASC")
}

func TestBuildListQuery_SearchEscapesWildcards(t *testing.T) {
	query, args := buildListQuery(model.BookFilter{Search: "100%_sure", Sort: model.SortTitle, Desc: true})

	assert.Equal(t, []interface{}{`%100\%\_sure%`}, args)
	assert.Contains(t, query, `b.title ILIKE $1 ESCAPE '\'`)
	assert.Contains(t, query, `b.plot ILIKE $1 ESCAPE '\'`)
	assert.Contains(t, query, "ORDER BY LOWER(b.title) DESC, b.id ASC")
}

func TestBuildListQuery_AuthorFilter(t *testing.T) {
	authorID := int64(7)
	query, args := buildListQuery(model.BookFilter{Search: "x", AuthorID: &authorID, Sort: model.SortPrice})

	assert.Equal(t, []interface{}{"%x%", int64(7)}, args)
	assert.Contains(t, query, "b.author_id = $2")
	assert.Contains(t, query, ") AND b.author_id")
	assert.Contains(t, query, "ORDER BY b.price ASC")
}

func TestBuildListQuery_UnknownSortFallsBack(t *testing.T) {
	query, _ := buildListQuery(model.BookFilter{Sort: model.SortKey("isbn")})
	assert.Contains(t, query, "ORDER BY LOWER(b.sort_title) ASC")
}
