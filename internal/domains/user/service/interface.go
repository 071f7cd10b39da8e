package service

import (
	"context"

	"github.com/google/uuid"

	"bookstore-web/internal/domains/user/model"
)

// ServiceInterface is the account business logic.
type ServiceInterface interface {
	// Register creates a regular user (and their profile) from the signup form.
	Register(ctx context.Context, form model.SignupForm) (*model.User, error)
	// Login checks credentials and returns the user with a signed session token.
	Login(ctx context.Context, form model.LoginForm) (*model.User, string, error)
	// CreateSuperuser creates a superuser, or promotes the existing account with that email.
	CreateSuperuser(ctx context.Context, email, fullName, password string) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}
