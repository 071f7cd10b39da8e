package memstore

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"bookstore-web/internal/domains/book/model"
	"bookstore-web/internal/domains/book/repository"
	checkoutModel "bookstore-web/internal/domains/checkout/model"
)

type bookRepository struct {
	s *Store
}

// Books returns the book repository.
func (s *Store) Books() repository.RepositoryInterface {
	return &bookRepository{s: s}
}

// withAuthor fills the joined author columns. Callers hold a lock.
func (r *bookRepository) withAuthor(b model.Book) model.Book {
	b.AuthorName, b.AuthorSortName = "", ""
	if b.AuthorID != nil {
		if a, ok := r.s.authors[*b.AuthorID]; ok {
			b.AuthorName = a.DisplayName()
			b.AuthorSortName = a.SortName
		}
	}
	return b
}

func (r *bookRepository) List(_ context.Context, filter model.BookFilter) ([]model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	term := strings.ToLower(filter.Search)

	books := make([]model.Book, 0, len(r.s.books))
	for _, b := range r.s.books {
		if term != "" && !matches(b, term) {
			continue
		}
		if filter.AuthorID != nil && (b.AuthorID == nil || *b.AuthorID != *filter.AuthorID) {
			continue
		}
		books = append(books, r.withAuthor(b))
	}

	key := filter.Sort
	if _, ok := model.ParseSortKey(string(key)); !ok {
		key = model.DefaultSort
	}

	sort.Slice(books, func(i, j int) bool {
		c := compareBooks(books[i], books[j], key)
		if filter.Desc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return books[i].ID < books[j].ID
	})

	return books, nil
}

func matches(b model.Book, term string) bool {
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Description), term) ||
		strings.Contains(strings.ToLower(b.Plot), term)
}

// compareBooks orders two books by key ascending, NULLs last.
func compareBooks(a, b model.Book, key model.SortKey) int {
	switch key {
	case model.SortTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case model.SortPrice:
		return a.Price.Cmp(b.Price)
	case model.SortRating:
		return compareNullDecimal(a.Rating, b.Rating)
	case model.SortRatingCount:
		return compareInt(a.RatingCount, b.RatingCount)
	case model.SortYear:
		return compareInt(a.Year, b.Year)
	case model.SortPages:
		return compareInt(a.Pages, b.Pages)
	case model.SortAuthor:
		return compareNullable(strings.ToLower(a.AuthorSortName), strings.ToLower(b.AuthorSortName))
	default:
		return strings.Compare(strings.ToLower(a.SortTitle), strings.ToLower(b.SortTitle))
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareNullDecimal(a, b decimal.NullDecimal) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return 1
	case !b.Valid:
		return -1
	}
	return a.Decimal.Cmp(b.Decimal)
}

func (r *bookRepository) GetByID(_ context.Context, id int64) (*model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.books[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	b = r.withAuthor(b)
	return &b, nil
}

func (r *bookRepository) GetByIDs(_ context.Context, ids []int64) (map[int64]model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make(map[int64]model.Book, len(ids))
	for _, id := range ids {
		if b, ok := r.s.books[id]; ok {
			result[id] = r.withAuthor(b)
		}
	}
	return result, nil
}

func (r *bookRepository) Create(_ context.Context, b *model.Book) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b.ID = r.s.nextID("books")
	b.CreatedAt = r.s.now()
	b.UpdatedAt = b.CreatedAt
	r.s.books[b.ID] = *b
	return b.ID, nil
}

func (r *bookRepository) Update(_ context.Context, b *model.Book) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.books[b.ID]
	if !ok {
		return model.ErrBookNotFound
	}
	b.CreatedAt = current.CreatedAt
	b.UpdatedAt = r.s.now()
	r.s.books[b.ID] = *b
	return nil
}

func (r *bookRepository) UpdateImage(_ context.Context, id int64, image string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.books[id]
	if !ok {
		return model.ErrBookNotFound
	}
	b.Image = image
	b.UpdatedAt = r.s.now()
	r.s.books[id] = b
	return nil
}

func (r *bookRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[id]; !ok {
		return model.ErrBookNotFound
	}
	delete(r.s.books, id)

	// ON DELETE CASCADE
	for detailID, d := range r.s.awardDetails {
		if d.BookID != nil && *d.BookID == id {
			delete(r.s.awardDetails, detailID)
		}
	}
	for orderID, o := range r.s.orders {
		kept := make([]checkoutModel.OrderLineItem, 0, len(o.LineItems))
		for _, item := range o.LineItems {
			if item.BookID != id {
				kept = append(kept, item)
			}
		}
		if len(kept) == len(o.LineItems) {
			continue
		}
		o.LineItems = kept
		o.UpdateTotals(o.DeliveryCost)
		r.s.orders[orderID] = o
	}
	return nil
}

func (r *bookRepository) AuthorExists(_ context.Context, authorID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.authors[authorID]
	return ok, nil
}
