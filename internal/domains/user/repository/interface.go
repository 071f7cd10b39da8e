package repository

import (
	"context"

	"github.com/google/uuid"

	"bookstore-web/internal/domains/user/model"
)

// RepositoryInterface is the user data access contract.
type RepositoryInterface interface {
	// Create stores the user together with an empty profile.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	SetSuperuser(ctx context.Context, id uuid.UUID, isSuperuser bool) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
