package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-web/internal/domains/checkout/model"
	"bookstore-web/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const orderColumns = `
	id, order_number, user_profile_id, full_name, email, phone_number, country,
	COALESCE(postcode, ''), town_or_city, address_line1, COALESCE(address_line2, ''),
	COALESCE(county, ''), date, delivery_cost, order_total, grand_total, original_bag`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.UserProfileID,
		&o.FullName,
		&o.Email,
		&o.PhoneNumber,
		&o.Country,
		&o.Postcode,
		&o.TownOrCity,
		&o.AddressLine1,
		&o.AddressLine2,
		&o.County,
		&o.Date,
		&o.DeliveryCost,
		&o.OrderTotal,
		&o.GrandTotal,
		&o.OriginalBag,
	)
}

func (r *postgresRepository) Create(ctx context.Context, order *model.Order) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO orders (
				order_number, user_profile_id, full_name, email, phone_number, country,
				postcode, town_or_city, address_line1, address_line2, county,
				delivery_cost, order_total, grand_total, original_bag
			) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14, $15)
			RETURNING id, date
		`
		err := tx.QueryRow(ctx, query,
			order.OrderNumber,
			order.UserProfileID,
			order.FullName,
			order.Email,
			order.PhoneNumber,
			order.Country,
			order.Postcode,
			order.TownOrCity,
			order.AddressLine1,
			order.AddressLine2,
			order.County,
			order.DeliveryCost,
			order.OrderTotal,
			order.GrandTotal,
			order.OriginalBag,
		).Scan(&order.ID, &order.Date)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		batch := &pgx.Batch{}
		for i := range order.LineItems {
			order.LineItems[i].OrderID = order.ID
			batch.Queue(`
				INSERT INTO order_line_items (order_id, book_id, quantity, lineitem_total)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, order.ID, order.LineItems[i].BookID, order.LineItems[i].Quantity, order.LineItems[i].LineitemTotal)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range order.LineItems {
			if err := results.QueryRow().Scan(&order.LineItems[i].ID); err != nil {
				_ = results.Close()
				return fmt.Errorf("failed to create order line item: %w", err)
			}
		}
		return results.Close()
	})
}

func (r *postgresRepository) GetByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var o model.Order
	err := scanOrder(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber), &o)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT li.id, li.order_id, li.book_id, b.title, li.quantity, li.lineitem_total
		FROM order_line_items li
		JOIN books b ON b.id = li.book_id
		WHERE li.order_id = $1
		ORDER BY li.id
	`, o.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderLineItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.BookID, &item.BookTitle, &item.Quantity, &item.LineitemTotal); err != nil {
			return nil, fmt.Errorf("failed to scan order line item: %w", err)
		}
		o.LineItems = append(o.LineItems, item)
	}

	return &o, rows.Err()
}

func (r *postgresRepository) ListByProfile(ctx context.Context, profileID int64) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_profile_id = $1 ORDER BY date DESC, id DESC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
