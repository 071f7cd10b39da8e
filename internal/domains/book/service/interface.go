package service

import (
	"context"

	"bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/infrastructure/queue"
)

// ImageUpload is a cover image submitted with the book form.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// ServiceInterface is the catalog business logic used by the handlers.
type ServiceInterface interface {
	// ListBooks applies search and sort. A present but empty search returns ErrEmptySearch.
	ListBooks(ctx context.Context, q model.CatalogQuery) (*model.Catalog, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	// CreateBook validates the form and persists a new book. Invalid input
	// yields a validation.Errors value and nothing is stored.
	CreateBook(ctx context.Context, form model.BookForm, image *ImageUpload) (*model.Book, error)
	UpdateBook(ctx context.Context, id int64, form model.BookForm, image *ImageUpload) (*model.Book, error)
	DeleteBook(ctx context.Context, id int64) error
	// ExportCatalog renders the listing for q as an xlsx workbook.
	ExportCatalog(ctx context.Context, q model.CatalogQuery) ([]byte, error)
}

// ImageService builds and removes stored cover images. The worker drives it.
type ImageService interface {
	ProcessImage(ctx context.Context, payload queue.ProcessBookImagePayload) error
	DeleteImages(ctx context.Context, bookID int64) error
}
