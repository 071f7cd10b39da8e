package memstore

import (
	"context"
	"sort"

	"bookstore-web/internal/domains/checkout/model"
	"bookstore-web/internal/domains/checkout/repository"
)

type orderRepository struct {
	s *Store
}

// Orders returns the order repository.
func (s *Store) Orders() repository.RepositoryInterface {
	return &orderRepository{s: s}
}

func (r *orderRepository) Create(_ context.Context, order *model.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order.ID = r.s.nextID("orders")
	order.Date = r.s.now()

	stored := *order
	stored.LineItems = make([]model.OrderLineItem, len(order.LineItems))
	for i := range order.LineItems {
		order.LineItems[i].ID = r.s.nextID("order_line_items")
		order.LineItems[i].OrderID = order.ID
		stored.LineItems[i] = order.LineItems[i]
	}
	r.s.orders[order.ID] = stored
	return nil
}

func (r *orderRepository) GetByNumber(_ context.Context, orderNumber string) (*model.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, o := range r.s.orders {
		if o.OrderNumber != orderNumber {
			continue
		}
		items := make([]model.OrderLineItem, 0, len(o.LineItems))
		for _, item := range o.LineItems {
			if b, ok := r.s.books[item.BookID]; ok {
				item.BookTitle = b.Title
				items = append(items, item)
			}
		}
		o.LineItems = items
		return &o, nil
	}
	return nil, model.ErrOrderNotFound
}

func (r *orderRepository) ListByProfile(_ context.Context, profileID int64) ([]model.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := make([]model.Order, 0)
	for _, o := range r.s.orders {
		if o.UserProfileID != nil && *o.UserProfileID == profileID {
			o.LineItems = nil
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].Date.Equal(orders[j].Date) {
			return orders[i].Date.After(orders[j].Date)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}
