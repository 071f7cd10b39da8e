package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-web/internal/domains/profile/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	query := `
		SELECT id, user_id,
		       COALESCE(default_phone_number, ''), COALESCE(default_address_line1, ''),
		       COALESCE(default_address_line2, ''), COALESCE(default_town_or_city, ''),
		       COALESCE(default_county, ''), COALESCE(default_postcode, ''),
		       COALESCE(default_country, ''), updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var p model.UserProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.DefaultPhoneNumber,
		&p.DefaultAddressLine1,
		&p.DefaultAddressLine2,
		&p.DefaultTownOrCity,
		&p.DefaultCounty,
		&p.DefaultPostcode,
		&p.DefaultCountry,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET default_phone_number = NULLIF($2, ''), default_address_line1 = NULLIF($3, ''),
		    default_address_line2 = NULLIF($4, ''), default_town_or_city = NULLIF($5, ''),
		    default_county = NULLIF($6, ''), default_postcode = NULLIF($7, ''),
		    default_country = NULLIF($8, ''), updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.ID,
		p.DefaultPhoneNumber,
		p.DefaultAddressLine1,
		p.DefaultAddressLine2,
		p.DefaultTownOrCity,
		p.DefaultCounty,
		p.DefaultPostcode,
		p.DefaultCountry,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrProfileNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}
