package service

import (
	"context"
	"fmt"

	"bookstore-web/internal/domains/author/model"
	"bookstore-web/internal/domains/author/repository"
	"bookstore-web/pkg/logger"
)

type authorService struct {
	repo repository.RepositoryInterface
}

func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{repo: repo}
}

func (s *authorService) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) GetAuthor(ctx context.Context, id int64) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) CreateAuthor(ctx context.Context, form model.AuthorForm) (*model.Author, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	a := &model.Author{}
	form.ApplyTo(a)

	if _, err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	logger.Info("author created", map[string]interface{}{"author_id": a.ID, "name": a.Name})
	return a, nil
}

func (s *authorService) UpdateAuthor(ctx context.Context, id int64, form model.AuthorForm) (*model.Author, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}
	form.ApplyTo(a)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}
	return a, nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("author deleted", map[string]interface{}{"author_id": id})
	return nil
}
