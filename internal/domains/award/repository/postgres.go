package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-web/internal/domains/award/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const awardColumns = `
	id, name, COALESCE(friendly_name, ''), COALESCE(sort_name, ''), COALESCE(description, ''),
	created_at, updated_at`

const detailSelect = `
	SELECT d.id, d.award_id, COALESCE(NULLIF(a.friendly_name, ''), a.name, ''),
	       d.book_id, COALESCE(b.title, ''), d.award_year, d.category
	FROM award_details d
	LEFT JOIN awards a ON a.id = d.award_id
	LEFT JOIN books b ON b.id = d.book_id`

func scanAward(row pgx.Row, a *model.Award) error {
	return row.Scan(
		&a.ID,
		&a.Name,
		&a.FriendlyName,
		&a.SortName,
		&a.Description,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

func scanDetail(row pgx.Row, d *model.AwardDetail) error {
	return row.Scan(
		&d.ID,
		&d.AwardID,
		&d.AwardName,
		&d.BookID,
		&d.BookTitle,
		&d.AwardYear,
		&d.Category,
	)
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Award, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+awardColumns+` FROM awards ORDER BY sort_name ASC NULLS LAST, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list awards: %w", err)
	}
	defer rows.Close()

	awards := make([]model.Award, 0)
	for rows.Next() {
		var a model.Award
		if err := scanAward(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan award: %w", err)
		}
		awards = append(awards, a)
	}
	return awards, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Award, error) {
	var a model.Award
	if err := scanAward(r.pool.QueryRow(ctx, `SELECT `+awardColumns+` FROM awards WHERE id = $1`, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAwardNotFound
		}
		return nil, fmt.Errorf("failed to get award by id: %w", err)
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Award) (int64, error) {
	query := `
		INSERT INTO awards (name, friendly_name, sort_name, description)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, a.Name, a.FriendlyName, a.SortName, a.Description).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create award: %w", err)
	}
	return a.ID, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *model.Award) error {
	query := `
		UPDATE awards
		SET name = $2, friendly_name = NULLIF($3, ''), sort_name = NULLIF($4, ''),
		    description = NULLIF($5, ''), updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, a.ID, a.Name, a.FriendlyName, a.SortName, a.Description).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAwardNotFound
		}
		return fmt.Errorf("failed to update award: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM awards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete award: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAwardNotFound
	}
	return nil
}

func (r *postgresRepository) listDetails(ctx context.Context, where string, arg int64) ([]model.AwardDetail, error) {
	rows, err := r.pool.Query(ctx, detailSelect+"\n\tWHERE "+where+"\n\tORDER BY d.award_year ASC, d.id ASC", arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list award details: %w", err)
	}
	defer rows.Close()

	details := make([]model.AwardDetail, 0)
	for rows.Next() {
		var d model.AwardDetail
		if err := scanDetail(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan award detail: %w", err)
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *postgresRepository) ListDetailsByAward(ctx context.Context, awardID int64) ([]model.AwardDetail, error) {
	return r.listDetails(ctx, "d.award_id = $1", awardID)
}

func (r *postgresRepository) ListDetailsByBook(ctx context.Context, bookID int64) ([]model.AwardDetail, error) {
	return r.listDetails(ctx, "d.book_id = $1", bookID)
}

func (r *postgresRepository) GetDetail(ctx context.Context, id int64) (*model.AwardDetail, error) {
	var d model.AwardDetail
	if err := scanDetail(r.pool.QueryRow(ctx, detailSelect+"\n\tWHERE d.id = $1", id), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAwardDetailNotFound
		}
		return nil, fmt.Errorf("failed to get award detail: %w", err)
	}
	return &d, nil
}

func (r *postgresRepository) CreateDetail(ctx context.Context, d *model.AwardDetail) (int64, error) {
	query := `
		INSERT INTO award_details (award_id, book_id, award_year, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query, d.AwardID, d.BookID, d.AwardYear, d.Category).Scan(&d.ID); err != nil {
		return 0, fmt.Errorf("failed to create award detail: %w", err)
	}
	return d.ID, nil
}

func (r *postgresRepository) UpdateDetail(ctx context.Context, d *model.AwardDetail) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE award_details SET award_id = $2, book_id = $3, award_year = $4, category = $5 WHERE id = $1`,
		d.ID, d.AwardID, d.BookID, d.AwardYear, d.Category,
	)
	if err != nil {
		return fmt.Errorf("failed to update award detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAwardDetailNotFound
	}
	return nil
}

func (r *postgresRepository) DeleteDetail(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM award_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete award detail: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAwardDetailNotFound
	}
	return nil
}

func (r *postgresRepository) BookExists(ctx context.Context, bookID int64) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book: %w", err)
	}
	return exists, nil
}
