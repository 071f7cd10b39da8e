package service

import (
	"context"

	"github.com/google/uuid"

	"bookstore-web/internal/domains/checkout/model"
	"bookstore-web/internal/shared/session"
)

// ServiceInterface turns the session bag into orders.
type ServiceInterface interface {
	// NewOrderForm returns an order form prefilled from the user's profile, or blank for guests.
	NewOrderForm(ctx context.Context, userID *uuid.UUID, email, fullName string) model.OrderForm
	// PlaceOrder validates the form, stores the order and clears the bag.
	PlaceOrder(ctx context.Context, sess *session.Session, userID *uuid.UUID, form model.OrderForm) (*model.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (*model.Order, error)
	ListOrders(ctx context.Context, profileID int64) ([]model.Order, error)
}
