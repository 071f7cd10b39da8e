package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bagModel "bookstore-web/internal/domains/bag/model"
	bagService "bookstore-web/internal/domains/bag/service"
	bookModel "bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/domains/checkout/model"
	"bookstore-web/internal/domains/checkout/service"
	profileService "bookstore-web/internal/domains/profile/service"
	userModel "bookstore-web/internal/domains/user/model"
	"bookstore-web/internal/infrastructure/memstore"
	"bookstore-web/internal/shared/session"
)

type fixture struct {
	store    *memstore.Store
	bag      bagService.ServiceInterface
	profiles profileService.ServiceInterface
	checkout service.ServiceInterface
}

func newFixture() *fixture {
	store := memstore.New()
	bag := bagService.NewBagService(store.Books(), bagModel.DeliveryRules{
		FreeDeliveryThreshold:      decimal.NewFromInt(50),
		StandardDeliveryPercentage: decimal.NewFromInt(10),
	})
	profiles := profileService.NewProfileService(store.Profiles())
	return &fixture{
		store:    store,
		bag:      bag,
		profiles: profiles,
		checkout: service.NewCheckoutService(store.Orders(), bag, profiles),
	}
}

func (f *fixture) book(t *testing.T, title, price string) int64 {
	t.Helper()
	id, err := f.store.Books().Create(context.Background(), &bookModel.Book{
		ISBN: "9780000000000", Title: title, SortTitle: title, Price: decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) user(t *testing.T) uuid.UUID {
	t.Helper()
	u := &userModel.User{Email: "reader@example.com", IsActive: true}
	require.NoError(t, f.store.Users().Create(context.Background(), u))
	return u.ID
}

func validForm() model.OrderForm {
	return model.OrderForm{
		FullName:     "Jane Reader",
		Email:        "jane@example.com",
		PhoneNumber:  "0123456789",
		Country:      "ie",
		TownOrCity:   "Dublin",
		AddressLine1: "1 Main Street",
	}
}

func TestPlaceOrder_EmptyBag(t *testing.T) {
	f := newFixture()

	_, err := f.checkout.PlaceOrder(context.Background(), session.New("s"), nil, validForm())
	assert.ErrorIs(t, err, model.ErrEmptyBag)
}

func TestPlaceOrder_InvalidFormKeepsBag(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	sess := session.New("s")
	_, err := f.bag.Add(ctx, sess, f.book(t, "Dune", "10"), 1)
	require.NoError(t, err)

	form := validForm()
	form.Email = "not-an-email"
	_, err = f.checkout.PlaceOrder(ctx, sess, nil, form)
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrEmptyBag)
	assert.Equal(t, 1, sess.ItemCount())
}

func TestPlaceOrder_Guest(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	dune := f.book(t, "Dune", "10.00")
	emma := f.book(t, "Emma", "4.50")

	sess := session.New("s")
	_, err := f.bag.Add(ctx, sess, dune, 2)
	require.NoError(t, err)
	_, err = f.bag.Add(ctx, sess, emma, 1)
	require.NoError(t, err)

	order, err := f.checkout.PlaceOrder(ctx, sess, nil, validForm())
	require.NoError(t, err)

	assert.Len(t, order.OrderNumber, 32)
	assert.Nil(t, order.UserProfileID)
	assert.Equal(t, "IE", order.Country)
	assert.Equal(t, "24.5", order.OrderTotal.String())
	assert.Equal(t, "2.45", order.DeliveryCost.String())
	assert.Equal(t, "26.95", order.GrandTotal.String())
	assert.JSONEq(t, `{"1": 2, "2": 1}`, order.OriginalBag)
	require.Len(t, order.LineItems, 2)
	assert.Equal(t, "20", order.LineItems[0].LineitemTotal.String())
	assert.Zero(t, sess.ItemCount(), "bag is cleared")

	stored, err := f.checkout.GetOrder(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
	assert.Len(t, stored.LineItems, 2)
}

func TestPlaceOrder_SavesInfoToProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	userID := f.user(t)
	sess := session.New("s")
	_, err := f.bag.Add(ctx, sess, f.book(t, "Dune", "60"), 1)
	require.NoError(t, err)

	form := validForm()
	form.SaveInfo = "on"
	order, err := f.checkout.PlaceOrder(ctx, sess, &userID, form)
	require.NoError(t, err)
	assert.True(t, order.DeliveryCost.IsZero(), "free delivery over the threshold")

	profile, err := f.profiles.GetProfile(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, order.UserProfileID)
	assert.Equal(t, profile.ID, *order.UserProfileID)
	assert.Equal(t, "Dublin", profile.DefaultTownOrCity)
	assert.Equal(t, "IE", profile.DefaultCountry)

	orders, err := f.checkout.ListOrders(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.OrderNumber, orders[0].OrderNumber)

	prefilled := f.checkout.NewOrderForm(ctx, &userID, "reader@example.com", "Reader")
	assert.Equal(t, "0123456789", prefilled.PhoneNumber)
	assert.Equal(t, "1 Main Street", prefilled.AddressLine1)
	assert.Equal(t, "reader@example.com", prefilled.Email)
}

func TestGetOrder_Unknown(t *testing.T) {
	f := newFixture()
	_, err := f.checkout.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}
