package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookstore-web/internal/domains/user/model"
	"bookstore-web/internal/domains/user/repository"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/pkg/jwt"
	"bookstore-web/pkg/logger"
)

// DefaultPasswordCost is the bcrypt cost used outside tests.
const DefaultPasswordCost = 12

type userService struct {
	repo         repository.RepositoryInterface
	jwt          *jwt.Manager
	passwordCost int
}

func NewUserService(repo repository.RepositoryInterface, jwtManager *jwt.Manager, passwordCost int) ServiceInterface {
	if passwordCost < bcrypt.MinCost || passwordCost > bcrypt.MaxCost {
		passwordCost = DefaultPasswordCost
	}
	return &userService{
		repo:         repo,
		jwt:          jwtManager,
		passwordCost: passwordCost,
	}
}

func (s *userService) Register(ctx context.Context, form model.SignupForm) (*model.User, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	u, err := s.create(ctx, form.Email, form.FullName, form.Password, false)
	if errors.Is(err, model.ErrEmailAlreadyExists) {
		return nil, forms.Single("email", "a user with that email already exists")
	}
	return u, err
}

func (s *userService) create(ctx context.Context, email, fullName, password string, superuser bool) (*model.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, model.ErrEmailAlreadyExists
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, fmt.Errorf("check email exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(passwordHash),
		IsSuperuser:  superuser,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{"user_id": u.ID.String(), "superuser": superuser})
	return u, nil
}

func (s *userService) Login(ctx context.Context, form model.LoginForm) (*model.User, string, error) {
	if err := form.Validate(); err != nil {
		return nil, "", err
	}

	u, err := s.repo.GetByEmail(ctx, form.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", model.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(form.Password)); err != nil {
		return nil, "", model.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, "", model.ErrUserInactive
	}

	token, err := s.jwt.GenerateToken(u.ID.String(), u.Email, u.FullName, u.IsSuperuser)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	if err := s.repo.UpdateLastLogin(ctx, u.ID); err != nil {
		logger.Warn("update last login failed", map[string]interface{}{"user_id": u.ID.String(), "error": err.Error()})
	}

	return u, token, nil
}

func (s *userService) CreateSuperuser(ctx context.Context, email, fullName, password string) (*model.User, error) {
	form := model.SignupForm{Email: email, FullName: fullName, Password: password, PasswordConfirm: password}.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, form.Email)
	switch {
	case err == nil:
		if err := s.repo.SetSuperuser(ctx, existing.ID, true); err != nil {
			return nil, err
		}
		existing.IsSuperuser = true
		logger.Info("user promoted to superuser", map[string]interface{}{"user_id": existing.ID.String()})
		return existing, nil
	case errors.Is(err, model.ErrUserNotFound):
		return s.create(ctx, form.Email, form.FullName, form.Password, true)
	default:
		return nil, err
	}
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}
