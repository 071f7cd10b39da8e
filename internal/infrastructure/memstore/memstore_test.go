package memstore

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authorModel "bookstore-web/internal/domains/author/model"
	awardModel "bookstore-web/internal/domains/award/model"
	bookModel "bookstore-web/internal/domains/book/model"
	checkoutModel "bookstore-web/internal/domains/checkout/model"
)

func seedBook(t *testing.T, s *Store, title, sortTitle, price string, rating string, author *int64) int64 {
	t.Helper()
	b := &bookModel.Book{
		ISBN:      "9780000000000",
		Title:     title,
		SortTitle: sortTitle,
		Price:     decimal.RequireFromString(price),
		AuthorID:  author,
	}
	if rating != "" {
		b.Rating = decimal.NewNullDecimal(decimal.RequireFromString(rating))
	}
	id, err := s.Books().Create(context.Background(), b)
	require.NoError(t, err)
	return id
}

func titles(books []bookModel.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestBooks_ListSorting(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedBook(t, s, "beta", "Beta", "5", "4.5", nil)
	seedBook(t, s, "Alpha", "alpha", "12", "", nil)
	seedBook(t, s, "gamma", "Gamma", "5", "3.1", nil)

	books, err := s.Books().List(ctx, bookModel.BookFilter{Sort: bookModel.SortSortTitle})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, titles(books))

	books, err = s.Books().List(ctx, bookModel.BookFilter{Sort: bookModel.SortTitle, Desc: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma", "beta", "Alpha"}, titles(books))

	// equal prices keep id order
	books, err = s.Books().List(ctx, bookModel.BookFilter{Sort: bookModel.SortPrice})
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "gamma", "Alpha"}, titles(books))

	books, err = s.Books().List(ctx, bookModel.BookFilter{Sort: bookModel.SortRating})
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma", "beta", "Alpha"}, titles(books), "NULL rating sorts last")

	books, err = s.Books().List(ctx, bookModel.BookFilter{Sort: bookModel.SortRating, Desc: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "beta", "gamma"}, titles(books), "NULL rating sorts first when descending")
}

func TestBooks_ListSearch(t *testing.T) {
	ctx := context.Background()
	s := New()
	seedBook(t, s, "Dune", "Dune", "5", "", nil)
	seedBook(t, s, "Emma", "Emma", "5", "", nil)

	books, err := s.Books().List(ctx, bookModel.BookFilter{Search: "DUN"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune"}, titles(books))

	books, err = s.Books().List(ctx, bookModel.BookFilter{Search: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestAuthors_DeleteClearsBookAuthor(t *testing.T) {
	ctx := context.Background()
	s := New()

	authorID, err := s.Authors().Create(ctx, &authorModel.Author{Name: "Frank Herbert", SortName: "Herbert, Frank"})
	require.NoError(t, err)
	bookID := seedBook(t, s, "Dune", "Dune", "5", "", &authorID)

	b, err := s.Books().GetByID(ctx, bookID)
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", b.AuthorName)

	require.NoError(t, s.Authors().Delete(ctx, authorID))

	b, err = s.Books().GetByID(ctx, bookID)
	require.NoError(t, err)
	assert.Nil(t, b.AuthorID)
	assert.Empty(t, b.AuthorName)

	assert.ErrorIs(t, s.Authors().Delete(ctx, authorID), authorModel.ErrAuthorNotFound)
}

func TestAuthors_ListEmptySortNameLast(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.Authors().Create(ctx, &authorModel.Author{Name: "Nameless"})
	require.NoError(t, err)
	_, err = s.Authors().Create(ctx, &authorModel.Author{Name: "Austen", SortName: "Austen, Jane"})
	require.NoError(t, err)

	authors, err := s.Authors().List(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Austen", authors[0].Name)
	assert.Equal(t, "Nameless", authors[1].Name)
}

func TestDeleteCascadesAwardDetails(t *testing.T) {
	ctx := context.Background()
	s := New()
	awards := s.Awards()

	hugo, err := awards.Create(ctx, &awardModel.Award{Name: "Hugo"})
	require.NoError(t, err)
	dune := seedBook(t, s, "Dune", "Dune", "5", "", nil)
	emma := seedBook(t, s, "Emma", "Emma", "5", "", nil)

	_, err = awards.CreateDetail(ctx, &awardModel.AwardDetail{AwardID: &hugo, BookID: &dune, AwardYear: 1966})
	require.NoError(t, err)
	_, err = awards.CreateDetail(ctx, &awardModel.AwardDetail{AwardID: &hugo, BookID: &emma, AwardYear: 1816})
	require.NoError(t, err)

	details, err := awards.ListDetailsByAward(ctx, hugo)
	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, 1816, details[0].AwardYear)
	assert.Equal(t, "Emma", details[0].BookTitle)

	require.NoError(t, s.Books().Delete(ctx, dune))
	details, err = awards.ListDetailsByAward(ctx, hugo)
	require.NoError(t, err)
	assert.Len(t, details, 1)

	require.NoError(t, awards.Delete(ctx, hugo))
	details, err = awards.ListDetailsByBook(ctx, emma)
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestBooks_DeleteRecomputesOrderTotals(t *testing.T) {
	ctx := context.Background()
	s := New()
	dune := seedBook(t, s, "Dune", "Dune", "10", "", nil)
	emma := seedBook(t, s, "Emma", "Emma", "45", "", nil)

	order := &checkoutModel.Order{
		OrderNumber: "ABC123",
		LineItems: []checkoutModel.OrderLineItem{
			{BookID: dune, Quantity: 2, LineitemTotal: decimal.RequireFromString("20")},
			{BookID: emma, Quantity: 1, LineitemTotal: decimal.RequireFromString("45")},
		},
	}
	order.UpdateTotals(decimal.RequireFromString("6.50"))
	require.NoError(t, s.Orders().Create(ctx, order))

	untouched := &checkoutModel.Order{
		OrderNumber: "DEF456",
		LineItems: []checkoutModel.OrderLineItem{
			{BookID: dune, Quantity: 1, LineitemTotal: decimal.RequireFromString("10")},
		},
	}
	untouched.UpdateTotals(decimal.RequireFromString("1"))
	require.NoError(t, s.Orders().Create(ctx, untouched))

	require.NoError(t, s.Books().Delete(ctx, emma))

	got, err := s.Orders().GetByNumber(ctx, "ABC123")
	require.NoError(t, err)
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Dune", got.LineItems[0].BookTitle)
	assert.True(t, got.OrderTotal.Equal(decimal.RequireFromString("20")), "order total %s", got.OrderTotal)
	assert.True(t, got.DeliveryCost.Equal(decimal.RequireFromString("6.50")))
	assert.True(t, got.GrandTotal.Equal(decimal.RequireFromString("26.50")), "grand total %s", got.GrandTotal)

	other, err := s.Orders().GetByNumber(ctx, "DEF456")
	require.NoError(t, err)
	assert.True(t, other.GrandTotal.Equal(decimal.RequireFromString("11")))

	// an order whose every line item is gone keeps only its delivery cost
	require.NoError(t, s.Books().Delete(ctx, dune))
	got, err = s.Orders().GetByNumber(ctx, "ABC123")
	require.NoError(t, err)
	assert.Empty(t, got.LineItems)
	assert.True(t, got.OrderTotal.IsZero())
	assert.True(t, got.GrandTotal.Equal(decimal.RequireFromString("6.50")))
}
