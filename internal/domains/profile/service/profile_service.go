package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bookstore-web/internal/domains/profile/model"
	"bookstore-web/internal/domains/profile/repository"
)

type profileService struct {
	repo repository.RepositoryInterface
}

func NewProfileService(repo repository.RepositoryInterface) ServiceInterface {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, form model.UserProfileForm) (*model.UserProfile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}
	form.ApplyTo(p)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}
