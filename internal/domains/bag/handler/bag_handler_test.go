package handler_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookModel "bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/shared/webtest"
)

func seedBook(t *testing.T, w *webtest.W, title, price string) string {
	t.Helper()
	id, err := w.Store.Books().Create(context.Background(), &bookModel.Book{
		Title: title, SortTitle: title, Price: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return strconv.FormatInt(id, 10)
}

func TestAddToBag(t *testing.T) {
	w := webtest.New(t)
	id := seedBook(t, w, "Dune", "10.00")

	rec := w.PostForm("/bag/add/"+id+"/", url.Values{"quantity": {"2"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/"+id+"/", rec.Header().Get("Location"))
	assert.Contains(t, w.Follow(rec).Body.String(), "Added Dune to your bag")

	rec = w.PostForm("/bag/add/"+id+"/", url.Values{"quantity": {"1"}, "redirect_url": {"/books/"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/", rec.Header().Get("Location"))
	assert.Contains(t, w.Follow(rec).Body.String(), "Updated Dune quantity to 3")

	page := w.Get("/bag/")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Dune")
}

func TestAddToBag_OffsiteRedirectIgnored(t *testing.T) {
	w := webtest.New(t)
	id := seedBook(t, w, "Dune", "10.00")

	rec := w.PostForm("/bag/add/"+id+"/", url.Values{"redirect_url": {"https://evil.example.com/"}})
	assert.Equal(t, "/books/"+id+"/", rec.Header().Get("Location"))
}

func TestAddToBag_UnknownBook(t *testing.T) {
	w := webtest.New(t)
	assert.Equal(t, http.StatusNotFound, w.PostForm("/bag/add/42/", nil).Code)
}

func TestAdjustRemoveAndClear(t *testing.T) {
	w := webtest.New(t)
	dune := seedBook(t, w, "Dune", "10.00")
	emma := seedBook(t, w, "Emma", "5.00")

	w.PostForm("/bag/add/"+dune+"/", url.Values{"quantity": {"1"}})
	w.PostForm("/bag/add/"+emma+"/", url.Values{"quantity": {"1"}})

	rec := w.PostForm("/bag/adjust/"+dune+"/", url.Values{"quantity": {"4"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, w.Follow(rec).Body.String(), "Updated Dune quantity to 4")

	rec = w.PostForm("/bag/adjust/"+dune+"/", url.Values{"quantity": {"0"}})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, w.Follow(rec).Body.String(), "Removed Dune from your bag")

	assert.Equal(t, http.StatusOK, w.PostForm("/bag/remove/"+emma+"/", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, w.PostForm("/bag/remove/"+emma+"/", nil).Code)

	w.PostForm("/bag/add/"+emma+"/", nil)
	rec = w.PostForm("/bag/clear/", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, w.Follow(rec).Body.String(), "Your bag is now empty")
}
