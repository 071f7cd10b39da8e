package service

import (
	"context"
	"fmt"

	"bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/domains/book/repository"
	"bookstore-web/internal/infrastructure/queue"
	"bookstore-web/internal/infrastructure/storage"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/pkg/logger"
)

const invalidChoice = "Select a valid choice. That choice is not one of the available choices."

var (
	_ ServiceInterface = (*BookService)(nil)
	_ ImageService     = (*BookService)(nil)
)

type BookService struct {
	repo      repository.RepositoryInterface
	storage   storage.ObjectStorage
	processor *storage.ImageProcessor
	queue     queue.Enqueuer
}

// NewBookService wires the catalog service. objects and enqueuer may be nil:
// without object storage uploads are ignored, without a queue images are processed inline.
func NewBookService(
	repo repository.RepositoryInterface,
	objects storage.ObjectStorage,
	processor *storage.ImageProcessor,
	enqueuer queue.Enqueuer,
) *BookService {
	if processor == nil {
		processor = storage.NewImageProcessor()
	}
	return &BookService{
		repo:      repo,
		storage:   objects,
		processor: processor,
		queue:     enqueuer,
	}
}

func (s *BookService) ListBooks(ctx context.Context, q model.CatalogQuery) (*model.Catalog, error) {
	filter, currentSorting := q.Resolve()
	if q.HasSearch && filter.Search == "" {
		return nil, model.ErrEmptySearch
	}

	books, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &model.Catalog{
		Books:          books,
		SearchTerm:     filter.Search,
		CurrentSorting: currentSorting,
	}, nil
}

func (s *BookService) ListByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	return s.repo.List(ctx, model.BookFilter{Sort: model.DefaultSort, AuthorID: &authorID})
}

func (s *BookService) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// validate runs form rules plus the checks that need the database or the image decoder.
func (s *BookService) validate(ctx context.Context, form model.BookForm, image *ImageUpload) error {
	if err := form.Validate(); err != nil {
		return err
	}

	if authorID := form.AuthorID(); authorID != nil {
		exists, err := s.repo.AuthorExists(ctx, *authorID)
		if err != nil {
			return err
		}
		if !exists {
			return forms.Single("author", invalidChoice)
		}
	}

	if image != nil && s.storage != nil {
		if _, err := s.processor.ValidateImage(image.Data); err != nil {
			return forms.Single("image", "Upload a valid image. "+err.Error())
		}
	}

	return nil
}

func (s *BookService) CreateBook(ctx context.Context, form model.BookForm, image *ImageUpload) (*model.Book, error) {
	form = form.Normalize()
	if err := s.validate(ctx, form, image); err != nil {
		return nil, err
	}

	b := &model.Book{}
	form.ApplyTo(b)

	if _, err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	logger.Info("book created", map[string]interface{}{"book_id": b.ID, "title": b.Title})

	s.attachImage(ctx, b, image)
	return b, nil
}

func (s *BookService) UpdateBook(ctx context.Context, id int64, form model.BookForm, image *ImageUpload) (*model.Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form = form.Normalize()
	if err := s.validate(ctx, form, image); err != nil {
		return nil, err
	}
	form.ApplyTo(b)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	s.attachImage(ctx, b, image)

	// reload for the joined author name
	return s.repo.GetByID(ctx, id)
}

func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("book deleted", map[string]interface{}{"book_id": id})

	if b.Image != "" && s.storage != nil {
		s.scheduleImageCleanup(ctx, id)
	}
	return nil
}
