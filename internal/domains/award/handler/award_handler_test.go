package handler_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-web/internal/domains/award/model"
	bookModel "bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/shared/webtest"
)

func TestAwardLifecycle(t *testing.T) {
	ctx := context.Background()
	w := webtest.New(t)
	w.SignIn("admin@example.com", true)

	rec := w.PostForm("/books/awards/add/", url.Values{"name": {"Hugo Award"}, "friendly_name": {"Hugo"}})
	require.Equal(t, http.StatusFound, rec.Code)

	awards, err := w.Store.Awards().List(ctx)
	require.NoError(t, err)
	require.Len(t, awards, 1)
	awardID := strconv.FormatInt(awards[0].ID, 10)

	bookID, err := w.Store.Books().Create(ctx, &bookModel.Book{Title: "Dune", SortTitle: "Dune", Price: decimal.NewFromInt(9)})
	require.NoError(t, err)

	for _, year := range []string{"1966", "1960"} {
		rec = w.PostForm("/books/award_details/add/", url.Values{
			"award":      {awardID},
			"book":       {strconv.FormatInt(bookID, 10)},
			"award_year": {year},
			"category":   {"Best Novel"},
		})
		require.Equal(t, http.StatusFound, rec.Code)
	}

	rec = w.Get("/books/awards/" + awardID + "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Hugo")
	assert.Less(t, strings.Index(body, `id="year-1960"`), strings.Index(body, `id="year-1966"`))

	rec = w.PostForm("/books/awards/delete/"+awardID+"/", nil)
	require.Equal(t, http.StatusFound, rec.Code)

	details, err := w.Store.Awards().ListDetailsByBook(ctx, bookID)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestCreateAwardDetail_Invalid(t *testing.T) {
	ctx := context.Background()
	w := webtest.New(t)
	w.SignIn("admin@example.com", true)

	rec := w.PostForm("/books/award_details/add/", url.Values{"award_year": {"19x6"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to add award details")

	details, err := w.Store.Awards().ListDetailsByBook(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestAwardPages_Public(t *testing.T) {
	ctx := context.Background()
	w := webtest.New(t)
	_, err := w.Store.Awards().Create(ctx, &model.Award{Name: "Booker Prize"})
	require.NoError(t, err)

	rec := w.Get("/books/awards/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booker Prize")

	assert.Equal(t, http.StatusNotFound, w.Get("/books/awards/99/").Code)
	assert.Equal(t, "/", w.Get("/books/award_details/add/").Header().Get("Location"))
}
