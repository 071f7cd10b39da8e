package service

import (
	"context"

	"bookstore-web/internal/domains/bag/model"
	"bookstore-web/internal/shared/session"
)

// ServiceInterface manages the session bag.
type ServiceInterface interface {
	// Contents prices the bag. Lines whose book no longer exists are dropped from the session.
	Contents(ctx context.Context, sess *session.Session) (*model.Contents, error)
	// Add increases the quantity of a book, clamped to 1..MaxQuantity.
	Add(ctx context.Context, sess *session.Session, bookID int64, quantity int) (*model.Change, error)
	// Adjust sets the quantity of a book; zero or less removes it.
	Adjust(ctx context.Context, sess *session.Session, bookID int64, quantity int) (*model.Change, error)
	Remove(ctx context.Context, sess *session.Session, bookID int64) (*model.Change, error)
	Clear(sess *session.Session)
	Rules() model.DeliveryRules
}
