package handler_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookModel "bookstore-web/internal/domains/book/model"
	checkoutModel "bookstore-web/internal/domains/checkout/model"
	"bookstore-web/internal/shared/webtest"
)

func TestProfile_RequiresLogin(t *testing.T) {
	w := webtest.New(t)

	rec := w.Get("/profile/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/accounts/login/")
}

func TestUpdateProfile(t *testing.T) {
	w := webtest.New(t)
	u := w.SignIn("reader@example.com", false)

	rec := w.PostForm("/profile/", url.Values{"default_country": {"XX"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Update failed. Please ensure the form is valid.")

	rec = w.PostForm("/profile/", url.Values{
		"default_country":       {"gb"},
		"default_town_or_city":  {"London"},
		"default_address_line1": {"221B Baker Street"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, w.Follow(rec).Body.String(), "Profile updated successfully")

	profile, err := w.Container.ProfileService.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "GB", profile.DefaultCountry)
	assert.Equal(t, "London", profile.DefaultTownOrCity)
}

func TestOrderHistory_OwnerOnly(t *testing.T) {
	ctx := context.Background()
	w := webtest.New(t)
	owner := w.SignIn("owner@example.com", false)

	profile, err := w.Container.ProfileService.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	bookID, err := w.Store.Books().Create(ctx, &bookModel.Book{Title: "Dune", SortTitle: "Dune", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)

	order := &checkoutModel.Order{
		OrderNumber:   "ABC123",
		UserProfileID: &profile.ID,
		FullName:      "Owner",
		Email:         "owner@example.com",
		Country:       "IE",
		LineItems:     []checkoutModel.OrderLineItem{{BookID: bookID, Quantity: 1, LineitemTotal: decimal.NewFromInt(10)}},
	}
	order.UpdateTotals(decimal.NewFromInt(1))
	require.NoError(t, w.Container.OrderRepo.Create(ctx, order))

	rec := w.Get("/profile/order_history/ABC123/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "This is a past confirmation for order number ABC123.")

	rec = w.Get("/profile/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ABC123")

	w.SignOut()
	w.SignIn("other@example.com", false)
	assert.Equal(t, http.StatusNotFound, w.Get("/profile/order_history/ABC123/").Code)

	w.SignOut()
	w.SignIn("admin@example.com", true)
	assert.Equal(t, http.StatusOK, w.Get("/profile/order_history/ABC123/").Code)

	assert.Equal(t, http.StatusNotFound, w.Get("/profile/order_history/NOPE/").Code)
}
