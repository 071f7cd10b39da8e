package service

import (
	"context"

	"github.com/google/uuid"

	"bookstore-web/internal/domains/profile/model"
)

// ServiceInterface is the profile business logic.
type ServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)
	// UpdateProfile validates the form and saves it over the user's defaults.
	UpdateProfile(ctx context.Context, userID uuid.UUID, form model.UserProfileForm) (*model.UserProfile, error)
}
