package model

import (
	"github.com/shopspring/decimal"

	bookModel "bookstore-web/internal/domains/book/model"
)

// MaxQuantity caps the copies of one book in the bag.
const MaxQuantity = 99

// Item is one bag line.
type Item struct {
	Book     bookModel.Book
	Quantity int
	Subtotal decimal.Decimal
}

// Contents is the priced bag shown on the bag and checkout pages.
type Contents struct {
	Items                 []Item
	Total                 decimal.Decimal
	ProductCount          int
	Delivery              decimal.Decimal
	FreeDeliveryDelta     decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
	GrandTotal            decimal.Decimal
}

// IsEmpty reports whether the bag has no lines.
func (c *Contents) IsEmpty() bool {
	return len(c.Items) == 0
}

// Change describes the effect of a bag operation, for the flash message.
type Change struct {
	Book     bookModel.Book
	Quantity int
	Previous int
}

// DeliveryRules prices delivery: free at or above the threshold, otherwise a percentage of the total.
type DeliveryRules struct {
	FreeDeliveryThreshold      decimal.Decimal
	StandardDeliveryPercentage decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Cost returns the delivery charge for an order total, rounded to cents.
func (r DeliveryRules) Cost(total decimal.Decimal) decimal.Decimal {
	if total.IsZero() || total.GreaterThanOrEqual(r.FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return total.Mul(r.StandardDeliveryPercentage).Div(hundred).Round(2)
}

// FreeDeliveryDelta is how much more must be spent to get free delivery.
func (r DeliveryRules) FreeDeliveryDelta(total decimal.Decimal) decimal.Decimal {
	if total.GreaterThanOrEqual(r.FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return r.FreeDeliveryThreshold.Sub(total)
}

// ClampQuantity keeps q within 1..MaxQuantity.
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
