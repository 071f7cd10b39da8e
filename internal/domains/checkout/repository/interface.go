package repository

import (
	"context"

	"bookstore-web/internal/domains/checkout/model"
)

// RepositoryInterface is the order data access contract.
type RepositoryInterface interface {
	// Create inserts the order and its line items atomically, filling ids and the order date.
	Create(ctx context.Context, order *model.Order) error
	// GetByNumber loads an order with its line items.
	GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	// ListByProfile returns a profile's orders, newest first, without line items.
	ListByProfile(ctx context.Context, profileID int64) ([]model.Order, error)
}
