package repository

import (
	"context"

	"bookstore-web/internal/domains/book/model"
)

// RepositoryInterface is the book data access contract.
type RepositoryInterface interface {
	// List returns the books matching filter in filter order, ties broken by id.
	List(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	// GetByIDs returns the existing books among ids, keyed by id.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]model.Book, error)
	Create(ctx context.Context, b *model.Book) (int64, error)
	Update(ctx context.Context, b *model.Book) error
	UpdateImage(ctx context.Context, id int64, image string) error
	// Delete removes the book and, by cascade, its award details.
	Delete(ctx context.Context, id int64) error
	AuthorExists(ctx context.Context, authorID int64) (bool, error)
}
