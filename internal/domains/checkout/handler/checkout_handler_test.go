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

	bookModel "bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/shared/webtest"
)

func orderForm() url.Values {
	return url.Values{
		"full_name":     {"Jane Reader"},
		"email":         {"jane@example.com"},
		"phone_number":  {"0123456789"},
		"country":       {"IE"},
		"town_or_city":  {"Dublin"},
		"address_line1": {"1 Main Street"},
	}
}

func fillBag(t *testing.T, w *webtest.W) {
	t.Helper()
	id, err := w.Store.Books().Create(context.Background(), &bookModel.Book{
		Title: "Dune", SortTitle: "Dune", Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	rec := w.PostForm("/bag/add/"+strconv.FormatInt(id, 10)+"/", url.Values{"quantity": {"2"}})
	require.Equal(t, http.StatusFound, rec.Code)
}

func TestCheckout_EmptyBagRedirects(t *testing.T) {
	w := webtest.New(t)

	rec := w.Get("/checkout/")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/books/", rec.Header().Get("Location"))
	assert.Contains(t, w.Follow(rec).Body.String(), "nothing in your bag at the moment")
}

func TestCheckout_InvalidForm(t *testing.T) {
	w := webtest.New(t)
	fillBag(t, w)

	form := orderForm()
	form.Del("full_name")
	rec := w.PostForm("/checkout/", form)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "There was an error with your form")

	// the bag survives a failed submission
	assert.Equal(t, http.StatusOK, w.Get("/checkout/").Code)
}

func TestCheckout_PlaceOrder(t *testing.T) {
	w := webtest.New(t)
	fillBag(t, w)

	require.Equal(t, http.StatusOK, w.Get("/checkout/").Code)

	rec := w.PostForm("/checkout/", orderForm())
	require.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/checkout/success/"))

	page := w.Follow(rec)
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "Order successfully processed!")

	orderNumber := strings.TrimSuffix(strings.TrimPrefix(location, "/checkout/success/"), "/")
	order, err := w.Container.CheckoutService.GetOrder(context.Background(), orderNumber)
	require.NoError(t, err)
	assert.Equal(t, "20", order.OrderTotal.String())
	assert.Equal(t, "2", order.DeliveryCost.String())
	assert.Equal(t, "22", order.GrandTotal.String())

	// bag was emptied
	assert.Equal(t, http.StatusFound, w.Get("/checkout/").Code)
}

func TestCheckoutSuccess_UnknownOrder(t *testing.T) {
	w := webtest.New(t)
	assert.Equal(t, http.StatusNotFound, w.Get("/checkout/success/NOPE/").Code)
}
