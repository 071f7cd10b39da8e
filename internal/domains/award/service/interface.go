package service

import (
	"context"

	"bookstore-web/internal/domains/award/model"
)

// ServiceInterface is the award business logic used by the handlers.
type ServiceInterface interface {
	ListAwards(ctx context.Context) ([]model.Award, error)
	GetAward(ctx context.Context, id int64) (*model.Award, error)
	// GetAwardPage returns the award with its details ordered by year and the distinct years.
	GetAwardPage(ctx context.Context, id int64) (*model.AwardPage, error)
	CreateAward(ctx context.Context, form model.AwardForm) (*model.Award, error)
	UpdateAward(ctx context.Context, id int64, form model.AwardForm) (*model.Award, error)
	DeleteAward(ctx context.Context, id int64) error

	ListBookAwards(ctx context.Context, bookID int64) ([]model.AwardDetail, error)
	GetAwardDetail(ctx context.Context, id int64) (*model.AwardDetail, error)
	CreateAwardDetail(ctx context.Context, form model.AwardDetailsForm) (*model.AwardDetail, error)
	UpdateAwardDetail(ctx context.Context, id int64, form model.AwardDetailsForm) (*model.AwardDetail, error)
	DeleteAwardDetail(ctx context.Context, id int64) error
}
