package repository

import (
	"context"

	"bookstore-web/internal/domains/author/model"
)

// RepositoryInterface is the author data access contract.
type RepositoryInterface interface {
	// List returns every author ordered by sort name, then id.
	List(ctx context.Context) ([]model.Author, error)
	GetByID(ctx context.Context, id int64) (*model.Author, error)
	Create(ctx context.Context, a *model.Author) (int64, error)
	Update(ctx context.Context, a *model.Author) error
	// Delete removes the author. Their books stay, with no author.
	Delete(ctx context.Context, id int64) error
}
