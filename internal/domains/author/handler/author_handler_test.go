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

	"bookstore-web/internal/domains/author/model"
	bookModel "bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/shared/webtest"
)

func TestAuthorPages(t *testing.T) {
	ctx := context.Background()
	w := webtest.New(t)

	authorID, err := w.Store.Authors().Create(ctx, &model.Author{Name: "Jane Austen", SortName: "Austen, Jane"})
	require.NoError(t, err)
	_, err = w.Store.Books().Create(ctx, &bookModel.Book{
		Title: "Emma", SortTitle: "Emma", Year: 1815, Price: decimal.NewFromInt(5), AuthorID: &authorID,
	})
	require.NoError(t, err)

	rec := w.Get("/books/authors/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Austen")

	rec = w.Get("/books/authors/" + strconv.FormatInt(authorID, 10) + "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Emma")

	assert.Equal(t, http.StatusNotFound, w.Get("/books/authors/999/").Code)
}

func TestCreateAuthor(t *testing.T) {
	w := webtest.New(t)
	w.SignIn("admin@example.com", true)

	rec := w.PostForm("/books/authors/add/", url.Values{"friendly_name": {"No name"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to add new author")

	rec = w.PostForm("/books/authors/add/", url.Values{"name": {"Frank Herbert"}, "sort_name": {"Herbert, Frank"}})
	require.Equal(t, http.StatusFound, rec.Code)

	authors, err := w.Store.Authors().List(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "Frank Herbert", authors[0].Name)
}

func TestDeleteAuthor_KeepsBooks(t *testing.T) {
	ctx := context.Background()
	w := webtest.New(t)

	authorID, err := w.Store.Authors().Create(ctx, &model.Author{Name: "Frank Herbert"})
	require.NoError(t, err)
	bookID, err := w.Store.Books().Create(ctx, &bookModel.Book{
		Title: "Dune", SortTitle: "Dune", Price: decimal.NewFromInt(9), AuthorID: &authorID,
	})
	require.NoError(t, err)

	path := "/books/authors/delete/" + strconv.FormatInt(authorID, 10) + "/"

	// anonymous visitors are sent home and nothing changes
	rec := w.PostForm(path, nil)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	_, err = w.Store.Authors().GetByID(ctx, authorID)
	require.NoError(t, err)

	w.SignIn("admin@example.com", true)
	rec = w.PostForm(path, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/", rec.Header().Get("Location"))
	assert.Contains(t, w.Follow(rec).Body.String(), "Author deleted")

	_, err = w.Store.Authors().GetByID(ctx, authorID)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)

	book, err := w.Store.Books().GetByID(ctx, bookID)
	require.NoError(t, err)
	assert.Nil(t, book.AuthorID)
}
