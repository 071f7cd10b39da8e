package memstore

import (
	"context"
	"sort"

	"bookstore-web/internal/domains/author/model"
	"bookstore-web/internal/domains/author/repository"
)

type authorRepository struct {
	s *Store
}

// Authors returns the author repository.
func (s *Store) Authors() repository.RepositoryInterface {
	return &authorRepository{s: s}
}

func (r *authorRepository) List(_ context.Context) ([]model.Author, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	authors := make([]model.Author, 0, len(r.s.authors))
	for _, a := range r.s.authors {
		authors = append(authors, a)
	}
	sort.Slice(authors, func(i, j int) bool {
		if c := compareNullable(authors[i].SortName, authors[j].SortName); c != 0 {
			return c < 0
		}
		return authors[i].ID < authors[j].ID
	})
	return authors, nil
}

func (r *authorRepository) GetByID(_ context.Context, id int64) (*model.Author, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.authors[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *authorRepository) Create(_ context.Context, a *model.Author) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.nextID("authors")
	a.CreatedAt = r.s.now()
	a.UpdatedAt = a.CreatedAt
	r.s.authors[a.ID] = *a
	return a.ID, nil
}

func (r *authorRepository) Update(_ context.Context, a *model.Author) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.authors[a.ID]
	if !ok {
		return model.ErrAuthorNotFound
	}
	a.CreatedAt = current.CreatedAt
	a.UpdatedAt = r.s.now()
	r.s.authors[a.ID] = *a
	return nil
}

func (r *authorRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.authors[id]; !ok {
		return model.ErrAuthorNotFound
	}
	delete(r.s.authors, id)

	// ON DELETE SET NULL
	for bookID, b := range r.s.books {
		if b.AuthorID != nil && *b.AuthorID == id {
			b.AuthorID = nil
			r.s.books[bookID] = b
		}
	}
	return nil
}

// compareNullable orders strings with the empty string treated as NULL, sorting last.
func compareNullable(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	case a < b:
		return -1
	default:
		return 1
	}
}
