package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-web/internal/domains/profile/model"
)

// RepositoryInterface is the profile data access contract.
// Profiles are created together with their user.
type RepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	Update(ctx context.Context, p *model.UserProfile) error
}
