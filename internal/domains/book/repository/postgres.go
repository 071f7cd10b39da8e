package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/shared/utils"
	"bookstore-web/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const bookSelect = `
	SELECT b.id, b.isbn, b.title, b.sort_title, b.author_id,
	       COALESCE(NULLIF(a.friendly_name, ''), a.name, ''), COALESCE(a.sort_name, ''),
	       b.year, b.pages, b.price, b.rating, b.rating_count,
	       b.plot, b.description, COALESCE(b.image_url, ''), COALESCE(b.image, ''),
	       b.created_at, b.updated_at
	FROM books b
	LEFT JOIN authors a ON a.id = b.author_id`

// orderColumns maps a whitelisted sort key to its SQL expression.
var orderColumns = map[model.SortKey]string{
	model.SortSortTitle:   "LOWER(b.sort_title)",
	model.SortTitle:       "LOWER(b.title)",
	model.SortPrice:       "b.price",
	model.SortRating:      "b.rating",
	model.SortRatingCount: "b.rating_count",
	model.SortYear:        "b.year",
	model.SortPages:       "b.pages",
	model.SortAuthor:      "LOWER(a.sort_name)",
}

func scanBook(row pgx.Row, b *model.Book) error {
	var rating decimal.NullDecimal
	err := row.Scan(
		&b.ID,
		&b.ISBN,
		&b.Title,
		&b.SortTitle,
		&b.AuthorID,
		&b.AuthorName,
		&b.AuthorSortName,
		&b.Year,
		&b.Pages,
		&b.Price,
		&rating,
		&b.RatingCount,
		&b.Plot,
		&b.Description,
		&b.ImageURL,
		&b.Image,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	b.Rating = rating
	return err
}

// buildListQuery assembles the listing SQL. NULLs follow Postgres defaults:
// last when ascending, first when descending.
func buildListQuery(filter model.BookFilter) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)

	if filter.Search != "" {
		args = append(args, "%"+utils.EscapeLike(filter.Search)+"%")
		n := len(args)
		where = append(where, "("+utils.JoinWithOr([]string{
			fmt.Sprintf(`b.title ILIKE $%d ESCAPE '\'`, n),
			fmt.Sprintf(`b.description ILIKE $%d ESCAPE '\'`, n),
			fmt.Sprintf(`b.plot ILIKE $%d ESCAPE '\'`, n),
		})+")")
	}

	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		where = append(where, fmt.Sprintf("b.author_id = $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(bookSelect)
	if len(where) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(utils.JoinWithAnd(where))
	}

	column, ok := orderColumns[filter.Sort]
	if !ok {
		column = orderColumns[model.DefaultSort]
	}
	direction := "ASC"
	if filter.Desc {
		direction = "DESC"
	}
	fmt.Fprintf(&sb, "\n\tORDER BY %s %s, b.id ASC", column, direction)

	return sb.String(), args
}

func (r *postgresRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	var b model.Book
	if err := scanBook(r.pool.QueryRow(ctx, bookSelect+"\n\tWHERE b.id = $1", id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return &b, nil
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]model.Book, error) {
	result := make(map[int64]model.Book, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, bookSelect+"\n\tWHERE b.id = ANY($1)", ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get books by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		result[b.ID] = b
	}

	return result, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (int64, error) {
	query := `
		INSERT INTO books (
			isbn, title, sort_title, author_id, year, pages, price, rating,
			rating_count, plot, description, image_url, image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), NULLIF($13, ''))
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ISBN,
		b.Title,
		b.SortTitle,
		b.AuthorID,
		b.Year,
		b.Pages,
		b.Price,
		b.Rating,
		b.RatingCount,
		b.Plot,
		b.Description,
		b.ImageURL,
		b.Image,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create book: %w", err)
	}

	return b.ID, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET isbn = $2, title = $3, sort_title = $4, author_id = $5, year = $6, pages = $7,
		    price = $8, rating = $9, rating_count = $10, plot = $11, description = $12,
		    image_url = NULLIF($13, ''), image = NULLIF($14, ''), updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ID,
		b.ISBN,
		b.Title,
		b.SortTitle,
		b.AuthorID,
		b.Year,
		b.Pages,
		b.Price,
		b.Rating,
		b.RatingCount,
		b.Plot,
		b.Description,
		b.ImageURL,
		b.Image,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrBookNotFound
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	return nil
}

func (r *postgresRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books SET image = NULLIF($2, ''), updated_at = NOW() WHERE id = $1`, id, image)
	if err != nil {
		return fmt.Errorf("failed to update book image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// Delete removes the book. Its order line items go with it (ON DELETE CASCADE),
// so the totals of the orders that held them are recomputed in the same transaction.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT DISTINCT order_id FROM order_line_items WHERE book_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to find affected orders: %w", err)
		}
		orderIDs, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return fmt.Errorf("failed to scan affected orders: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}

		if len(orderIDs) == 0 {
			return nil
		}
		_, err = tx.Exec(ctx, recomputeOrderTotals, orderIDs)
		if err != nil {
			return fmt.Errorf("failed to update order totals: %w", err)
		}
		return nil
	})
}

const recomputeOrderTotals = `
	UPDATE orders o
	SET order_total = t.total,
	    grand_total = t.total + o.delivery_cost
	FROM (
		SELECT ord.id, COALESCE(SUM(li.lineitem_total), 0) AS total
		FROM orders ord
		LEFT JOIN order_line_items li ON li.order_id = ord.id
		WHERE ord.id = ANY($1)
		GROUP BY ord.id
	) t
	WHERE o.id = t.id`

func (r *postgresRepository) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author: %w", err)
	}
	return exists, nil
}
