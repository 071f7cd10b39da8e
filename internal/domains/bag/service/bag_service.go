package service

import (
	"context"

	"github.com/shopspring/decimal"

	"bookstore-web/internal/domains/bag/model"
	bookRepo "bookstore-web/internal/domains/book/repository"
	"bookstore-web/internal/shared/session"
	"bookstore-web/pkg/logger"
)

type bagService struct {
	books bookRepo.RepositoryInterface
	rules model.DeliveryRules
}

func NewBagService(books bookRepo.RepositoryInterface, rules model.DeliveryRules) ServiceInterface {
	return &bagService{books: books, rules: rules}
}

func (s *bagService) Rules() model.DeliveryRules {
	return s.rules
}

func (s *bagService) Contents(ctx context.Context, sess *session.Session) (*model.Contents, error) {
	ids := sess.BagBookIDs()

	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	contents := &model.Contents{
		Items:                 make([]model.Item, 0, len(ids)),
		Total:                 decimal.Zero,
		FreeDeliveryThreshold: s.rules.FreeDeliveryThreshold,
	}

	for _, id := range ids {
		book, ok := books[id]
		if !ok {
			sess.RemoveItem(id)
			logger.Debug("dropped missing book from bag", map[string]interface{}{"book_id": id})
			continue
		}

		qty := sess.Quantity(id)
		subtotal := book.Price.Mul(decimal.NewFromInt(int64(qty)))

		contents.Items = append(contents.Items, model.Item{
			Book:     book,
			Quantity: qty,
			Subtotal: subtotal,
		})
		contents.Total = contents.Total.Add(subtotal)
		contents.ProductCount += qty
	}

	contents.Delivery = s.rules.Cost(contents.Total)
	contents.FreeDeliveryDelta = s.rules.FreeDeliveryDelta(contents.Total)
	contents.GrandTotal = contents.Total.Add(contents.Delivery)

	return contents, nil
}

func (s *bagService) Add(ctx context.Context, sess *session.Session, bookID int64, quantity int) (*model.Change, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	previous := sess.Quantity(bookID)
	next := model.ClampQuantity(previous + model.ClampQuantity(quantity))
	sess.SetQuantity(bookID, next)

	return &model.Change{Book: *book, Quantity: next, Previous: previous}, nil
}

func (s *bagService) Adjust(ctx context.Context, sess *session.Session, bookID int64, quantity int) (*model.Change, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	previous := sess.Quantity(bookID)
	if quantity > model.MaxQuantity {
		quantity = model.MaxQuantity
	}
	if quantity < 0 {
		quantity = 0
	}
	sess.SetQuantity(bookID, quantity)

	return &model.Change{Book: *book, Quantity: quantity, Previous: previous}, nil
}

func (s *bagService) Remove(ctx context.Context, sess *session.Session, bookID int64) (*model.Change, error) {
	previous := sess.Quantity(bookID)
	if !sess.RemoveItem(bookID) {
		return nil, model.ErrItemNotInBag
	}

	change := &model.Change{Previous: previous}
	if book, err := s.books.GetByID(ctx, bookID); err == nil {
		change.Book = *book
	}
	return change, nil
}

func (s *bagService) Clear(sess *session.Session) {
	sess.ClearBag()
}
