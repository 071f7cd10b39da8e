package memstore

import (
	"context"
	"strings"

	"github.com/google/uuid"

	profileModel "bookstore-web/internal/domains/profile/model"
	profileRepo "bookstore-web/internal/domains/profile/repository"
	userModel "bookstore-web/internal/domains/user/model"
	userRepo "bookstore-web/internal/domains/user/repository"
)

type userRepository struct {
	s *Store
}

// Users returns the user repository. Creating a user also creates their profile.
func (s *Store) Users() userRepo.RepositoryInterface {
	return &userRepository{s: s}
}

func (r *userRepository) Create(_ context.Context, u *userModel.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return userModel.ErrEmailAlreadyExists
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = r.s.now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = *u

	id := r.s.nextID("user_profiles")
	r.s.profiles[id] = profileModel.UserProfile{ID: id, UserID: u.ID, UpdatedAt: u.CreatedAt}
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id uuid.UUID) (*userModel.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, userModel.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*userModel.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, userModel.ErrUserNotFound
}

func (r *userRepository) SetSuperuser(_ context.Context, id uuid.UUID, isSuperuser bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return userModel.ErrUserNotFound
	}
	u.IsSuperuser = isSuperuser
	u.UpdatedAt = r.s.now()
	r.s.users[id] = u
	return nil
}

func (r *userRepository) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil
	}
	now := r.s.now()
	u.LastLoginAt = &now
	r.s.users[id] = u
	return nil
}

type profileRepository struct {
	s *Store
}

// Profiles returns the user profile repository.
func (s *Store) Profiles() profileRepo.RepositoryInterface {
	return &profileRepository{s: s}
}

func (r *profileRepository) GetByUserID(_ context.Context, userID uuid.UUID) (*profileModel.UserProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.profiles {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, profileModel.ErrProfileNotFound
}

func (r *profileRepository) Update(_ context.Context, p *profileModel.UserProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.profiles[p.ID]
	if !ok {
		return profileModel.ErrProfileNotFound
	}
	p.UserID = current.UserID
	p.UpdatedAt = r.s.now()
	r.s.profiles[p.ID] = *p
	return nil
}
