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

	authorModel "bookstore-web/internal/domains/author/model"
	"bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/shared/webtest"
)

func seedBook(t *testing.T, w *webtest.W, title string) int64 {
	t.Helper()
	id, err := w.Store.Books().Create(context.Background(), &model.Book{
		ISBN:        "9780000000000",
		Title:       title,
		SortTitle:   title,
		Year:        1965,
		Pages:       412,
		Price:       decimal.RequireFromString("9.99"),
		Plot:        "plot of " + title,
		Description: "about " + title,
	})
	require.NoError(t, err)
	return id
}

func validBookForm() url.Values {
	return url.Values{
		"isbn":         {"9780441013593"},
		"title":        {"Dune"},
		"sort_title":   {"Dune"},
		"year":         {"1965"},
		"pages":        {"412"},
		"price":        {"9.99"},
		"rating":       {"4.25"},
		"rating_count": {"1000"},
		"plot":         {"Spice."},
		"description":  {"Desert planet."},
	}
}

func TestListBooks_EmptySearchRedirects(t *testing.T) {
	w := webtest.New(t)

	rec := w.Get("/books/?q=")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/", rec.Header().Get("Location"))

	page := w.Follow(rec)
	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Please enter a search criteria")
}

func TestListBooks_Search(t *testing.T) {
	w := webtest.New(t)
	seedBook(t, w, "Dune")
	seedBook(t, w, "Emma")

	rec := w.Get("/books/?q=dun")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ">Dune</a>")
	assert.NotContains(t, rec.Body.String(), ">Emma</a>")
}

func TestListBooks_SearchMatchesRawTerm(t *testing.T) {
	w := webtest.New(t)
	seedBook(t, w, "Dune")
	seedBook(t, w, "Dune Messiah")

	rec := w.Get("/books/?q=%20%20")
	require.Equal(t, http.StatusOK, rec.Code, "whitespace-only query is searched, not rejected")
	assert.NotContains(t, rec.Body.String(), "Please enter a search criteria")
	assert.NotContains(t, rec.Body.String(), ">Dune</a>")

	rec = w.Get("/books/?q=dune%20")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ">Dune Messiah</a>")
	assert.NotContains(t, rec.Body.String(), ">Dune</a>")
}

func TestListBooks_TitleDescendingIgnoresCase(t *testing.T) {
	w := webtest.New(t)
	seedBook(t, w, "alpha")
	seedBook(t, w, "Charlie")
	seedBook(t, w, "bravo")

	rec := w.Get("/books/?sort=title&direction=desc")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	charlie := strings.Index(body, ">Charlie</a>")
	bravo := strings.Index(body, ">bravo</a>")
	alpha := strings.Index(body, ">alpha</a>")
	require.True(t, charlie >= 0 && bravo >= 0 && alpha >= 0)
	assert.Less(t, charlie, bravo)
	assert.Less(t, bravo, alpha)
}

func TestBookDetail_NotFound(t *testing.T) {
	w := webtest.New(t)
	assert.Equal(t, http.StatusNotFound, w.Get("/books/999/").Code)
	assert.Equal(t, http.StatusNotFound, w.Get("/books/abc/").Code)
}

func TestBookDetail(t *testing.T) {
	w := webtest.New(t)
	id := seedBook(t, w, "Dune")

	rec := w.Get("/books/" + itoa(id) + "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "about Dune")
}

func TestSuperuserRoutes_RejectOthers(t *testing.T) {
	w := webtest.New(t)
	id := seedBook(t, w, "Dune")

	rec := w.Get("/books/add/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	w.SignIn("reader@example.com", false)

	rec = w.PostForm("/books/delete/"+itoa(id)+"/", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	_, err := w.Store.Books().GetByID(context.Background(), id)
	assert.NoError(t, err, "book must survive")

	rec = w.Get("/books/export/")
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestCreateBook_InvalidRerendersWithoutSaving(t *testing.T) {
	w := webtest.New(t)
	w.SignIn("admin@example.com", true)

	form := validBookForm()
	form.Set("price", "abc")
	form.Del("title")

	rec := w.PostForm("/books/add/", form)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to add new book")

	books, err := w.Store.Books().List(context.Background(), model.BookFilter{})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestCreateBook(t *testing.T) {
	w := webtest.New(t)
	w.SignIn("admin@example.com", true)

	authorID, err := w.Store.Authors().Create(context.Background(), &authorModel.Author{Name: "Frank Herbert"})
	require.NoError(t, err)

	form := validBookForm()
	form.Set("author", itoa(authorID))

	rec := w.PostForm("/books/add/", form)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/add/", rec.Header().Get("Location"))
	assert.Contains(t, w.Follow(rec).Body.String(), "New book successfully added")

	books, err := w.Store.Books().List(context.Background(), model.BookFilter{})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Frank Herbert", books[0].AuthorName)
	assert.Equal(t, "4.25", books[0].Rating.Decimal.String())
}

func TestUpdateAndDeleteBook(t *testing.T) {
	ctx := context.Background()
	w := webtest.New(t)
	w.SignIn("admin@example.com", true)
	id := seedBook(t, w, "Dune")

	rec := w.Get("/books/edit/" + itoa(id) + "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You are editing Dune")

	form := validBookForm()
	form.Set("title", "Dune Messiah")
	rec = w.PostForm("/books/edit/"+itoa(id)+"/", form)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/"+itoa(id)+"/", rec.Header().Get("Location"))

	b, err := w.Store.Books().GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", b.Title)

	rec = w.PostForm("/books/delete/"+itoa(id)+"/", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	_, err = w.Store.Books().GetByID(ctx, id)
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestExportBooks(t *testing.T) {
	w := webtest.New(t)
	w.SignIn("admin@example.com", true)
	seedBook(t, w, "Dune")

	rec := w.Get("/books/export/?sort=price")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "books.xlsx")
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"))
}

func TestHome(t *testing.T) {
	w := webtest.New(t)
	assert.Equal(t, http.StatusOK, w.Get("/").Code)
	assert.Equal(t, http.StatusNotFound, w.Get("/no/such/page/").Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
