package repository

import (
	"context"

	"bookstore-web/internal/domains/award/model"
)

// RepositoryInterface is the award and award detail data access contract.
type RepositoryInterface interface {
	List(ctx context.Context) ([]model.Award, error)
	GetByID(ctx context.Context, id int64) (*model.Award, error)
	Create(ctx context.Context, a *model.Award) (int64, error)
	Update(ctx context.Context, a *model.Award) error
	// Delete removes the award and, by cascade, its details.
	Delete(ctx context.Context, id int64) error

	// ListDetailsByAward returns the award's details ordered by award year, then id.
	ListDetailsByAward(ctx context.Context, awardID int64) ([]model.AwardDetail, error)
	ListDetailsByBook(ctx context.Context, bookID int64) ([]model.AwardDetail, error)
	GetDetail(ctx context.Context, id int64) (*model.AwardDetail, error)
	CreateDetail(ctx context.Context, d *model.AwardDetail) (int64, error)
	UpdateDetail(ctx context.Context, d *model.AwardDetail) error
	DeleteDetail(ctx context.Context, id int64) error

	BookExists(ctx context.Context, bookID int64) (bool, error)
}
