// Package memstore is a mutex-guarded in-memory implementation of every repository,
// used by the development server and the handler tests. It follows the Postgres schema's
// foreign key actions: deleting an author clears books.author_id, deleting a book or an
// award removes the dependent award details. Deleting a book also drops its order line
// items and recomputes the totals of the orders that held them.
package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	authorModel "bookstore-web/internal/domains/author/model"
	awardModel "bookstore-web/internal/domains/award/model"
	bookModel "bookstore-web/internal/domains/book/model"
	checkoutModel "bookstore-web/internal/domains/checkout/model"
	profileModel "bookstore-web/internal/domains/profile/model"
	userModel "bookstore-web/internal/domains/user/model"
)

// Store holds all tables. Repositories obtained from it share the same data.
type Store struct {
	mu sync.RWMutex

	authors      map[int64]authorModel.Author
	books        map[int64]bookModel.Book
	awards       map[int64]awardModel.Award
	awardDetails map[int64]awardModel.AwardDetail
	users        map[uuid.UUID]userModel.User
	profiles     map[int64]profileModel.UserProfile
	orders       map[int64]checkoutModel.Order

	seq map[string]int64
	now func() time.Time
}

func New() *Store {
	return &Store{
		authors:      make(map[int64]authorModel.Author),
		books:        make(map[int64]bookModel.Book),
		awards:       make(map[int64]awardModel.Award),
		awardDetails: make(map[int64]awardModel.AwardDetail),
		users:        make(map[uuid.UUID]userModel.User),
		profiles:     make(map[int64]profileModel.UserProfile),
		orders:       make(map[int64]checkoutModel.Order),
		seq:          make(map[string]int64),
		now:          time.Now,
	}
}

// nextID returns the next value of table's sequence. Callers hold the write lock.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}
