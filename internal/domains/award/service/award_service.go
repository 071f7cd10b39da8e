package service

import (
	"context"
	"errors"
	"fmt"

	"bookstore-web/internal/domains/award/model"
	"bookstore-web/internal/domains/award/repository"
	"bookstore-web/internal/shared/forms"
	"bookstore-web/pkg/logger"
)

const invalidChoice = "Select a valid choice. That choice is not one of the available choices."

type awardService struct {
	repo repository.RepositoryInterface
}

func NewAwardService(repo repository.RepositoryInterface) ServiceInterface {
	return &awardService{repo: repo}
}

func (s *awardService) ListAwards(ctx context.Context) ([]model.Award, error) {
	return s.repo.List(ctx)
}

func (s *awardService) GetAward(ctx context.Context, id int64) (*model.Award, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *awardService) GetAwardPage(ctx context.Context, id int64) (*model.AwardPage, error) {
	award, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details, err := s.repo.ListDetailsByAward(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.AwardPage{
		Award:   award,
		Details: details,
		Years:   model.DistinctYears(details),
	}, nil
}

func (s *awardService) CreateAward(ctx context.Context, form model.AwardForm) (*model.Award, error) {
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}

	a := &model.Award{}
	form.ApplyTo(a)
	if _, err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create award: %w", err)
	}

	logger.Info("award created", map[string]interface{}{"award_id": a.ID, "name": a.Name})
	return a, nil
}

func (s *awardService) UpdateAward(ctx context.Context, id int64, form model.AwardForm) (*model.Award, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}
	form.ApplyTo(a)

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update award: %w", err)
	}
	return a, nil
}

func (s *awardService) DeleteAward(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("award deleted", map[string]interface{}{"award_id": id})
	return nil
}

func (s *awardService) ListBookAwards(ctx context.Context, bookID int64) ([]model.AwardDetail, error) {
	return s.repo.ListDetailsByBook(ctx, bookID)
}

func (s *awardService) GetAwardDetail(ctx context.Context, id int64) (*model.AwardDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// validateDetail checks the form rules and that the selected award and book exist.
func (s *awardService) validateDetail(ctx context.Context, form model.AwardDetailsForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	if awardID := form.AwardID(); awardID != nil {
		if _, err := s.repo.GetByID(ctx, *awardID); err != nil {
			if errors.Is(err, model.ErrAwardNotFound) {
				return forms.Single("award", invalidChoice)
			}
			return err
		}
	}

	if bookID := form.BookID(); bookID != nil {
		exists, err := s.repo.BookExists(ctx, *bookID)
		if err != nil {
			return err
		}
		if !exists {
			return forms.Single("book", invalidChoice)
		}
	}

	return nil
}

func (s *awardService) CreateAwardDetail(ctx context.Context, form model.AwardDetailsForm) (*model.AwardDetail, error) {
	form = form.Normalize()
	if err := s.validateDetail(ctx, form); err != nil {
		return nil, err
	}

	d := &model.AwardDetail{}
	form.ApplyTo(d)
	if _, err := s.repo.CreateDetail(ctx, d); err != nil {
		return nil, fmt.Errorf("create award detail: %w", err)
	}

	logger.Info("award detail created", map[string]interface{}{"award_detail_id": d.ID})
	return d, nil
}

func (s *awardService) UpdateAwardDetail(ctx context.Context, id int64, form model.AwardDetailsForm) (*model.AwardDetail, error) {
	d, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	form = form.Normalize()
	if err := s.validateDetail(ctx, form); err != nil {
		return nil, err
	}
	form.ApplyTo(d)

	if err := s.repo.UpdateDetail(ctx, d); err != nil {
		return nil, fmt.Errorf("update award detail: %w", err)
	}
	return s.repo.GetDetail(ctx, id)
}

func (s *awardService) DeleteAwardDetail(ctx context.Context, id int64) error {
	if err := s.repo.DeleteDetail(ctx, id); err != nil {
		return err
	}
	logger.Info("award detail deleted", map[string]interface{}{"award_detail_id": id})
	return nil
}
