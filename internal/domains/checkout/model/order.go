package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a placed order. Totals are derived from its line items.
type Order struct {
	ID            int64           `json:"id" db:"id"`
	OrderNumber   string          `json:"order_number" db:"order_number"`
	UserProfileID *int64          `json:"user_profile_id,omitempty" db:"user_profile_id"`
	FullName      string          `json:"full_name" db:"full_name"`
	Email         string          `json:"email" db:"email"`
	PhoneNumber   string          `json:"phone_number" db:"phone_number"`
	Country       string          `json:"country" db:"country"`
	Postcode      string          `json:"postcode" db:"postcode"`
	TownOrCity    string          `json:"town_or_city" db:"town_or_city"`
	AddressLine1  string          `json:"address_line1" db:"address_line1"`
	AddressLine2  string          `json:"address_line2" db:"address_line2"`
	County        string          `json:"county" db:"county"`
	Date          time.Time       `json:"date" db:"date"`
	DeliveryCost  decimal.Decimal `json:"delivery_cost" db:"delivery_cost"`
	OrderTotal    decimal.Decimal `json:"order_total" db:"order_total"`
	GrandTotal    decimal.Decimal `json:"grand_total" db:"grand_total"`
	OriginalBag   string          `json:"original_bag" db:"original_bag"`

	LineItems []OrderLineItem `json:"line_items,omitempty" db:"-"`
}

// OrderLineItem is one book in an order.
type OrderLineItem struct {
	ID            int64           `json:"id" db:"id"`
	OrderID       int64           `json:"order_id" db:"order_id"`
	BookID        int64           `json:"book_id" db:"book_id"`
	BookTitle     string          `json:"book_title" db:"-"`
	Quantity      int             `json:"quantity" db:"quantity"`
	LineitemTotal decimal.Decimal `json:"lineitem_total" db:"lineitem_total"`
}

// UpdateTotals recomputes the order total from the line items and adds delivery.
func (o *Order) UpdateTotals(delivery decimal.Decimal) {
	total := decimal.Zero
	for _, item := range o.LineItems {
		total = total.Add(item.LineitemTotal)
	}
	o.OrderTotal = total
	o.DeliveryCost = delivery
	o.GrandTotal = total.Add(delivery)
}
