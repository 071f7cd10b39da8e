package service

import (
	"context"

	"bookstore-web/internal/domains/author/model"
)

// ServiceInterface is the author business logic used by the handlers.
type ServiceInterface interface {
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int64) (*model.Author, error)
	// CreateAuthor validates the form and persists a new author.
	// Invalid input yields a validation.Errors value.
	CreateAuthor(ctx context.Context, form model.AuthorForm) (*model.Author, error)
	UpdateAuthor(ctx context.Context, id int64, form model.AuthorForm) (*model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
}
