package memstore

import (
	"context"
	"sort"

	"bookstore-web/internal/domains/award/model"
	"bookstore-web/internal/domains/award/repository"
)

type awardRepository struct {
	s *Store
}

// Awards returns the award and award detail repository.
func (s *Store) Awards() repository.RepositoryInterface {
	return &awardRepository{s: s}
}

func (r *awardRepository) List(_ context.Context) ([]model.Award, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	awards := make([]model.Award, 0, len(r.s.awards))
	for _, a := range r.s.awards {
		awards = append(awards, a)
	}
	sort.Slice(awards, func(i, j int) bool {
		if c := compareNullable(awards[i].SortName, awards[j].SortName); c != 0 {
			return c < 0
		}
		return awards[i].ID < awards[j].ID
	})
	return awards, nil
}

func (r *awardRepository) GetByID(_ context.Context, id int64) (*model.Award, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.awards[id]
	if !ok {
		return nil, model.ErrAwardNotFound
	}
	return &a, nil
}

func (r *awardRepository) Create(_ context.Context, a *model.Award) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.nextID("awards")
	a.CreatedAt = r.s.now()
	a.UpdatedAt = a.CreatedAt
	r.s.awards[a.ID] = *a
	return a.ID, nil
}

func (r *awardRepository) Update(_ context.Context, a *model.Award) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.awards[a.ID]
	if !ok {
		return model.ErrAwardNotFound
	}
	a.CreatedAt = current.CreatedAt
	a.UpdatedAt = r.s.now()
	r.s.awards[a.ID] = *a
	return nil
}

func (r *awardRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.awards[id]; !ok {
		return model.ErrAwardNotFound
	}
	delete(r.s.awards, id)

	// ON DELETE CASCADE
	for detailID, d := range r.s.awardDetails {
		if d.AwardID != nil && *d.AwardID == id {
			delete(r.s.awardDetails, detailID)
		}
	}
	return nil
}

// withNames fills the joined award name and book title. Callers hold a lock.
func (r *awardRepository) withNames(d model.AwardDetail) model.AwardDetail {
	d.AwardName, d.BookTitle = "", ""
	if d.AwardID != nil {
		if a, ok := r.s.awards[*d.AwardID]; ok {
			d.AwardName = a.DisplayName()
		}
	}
	if d.BookID != nil {
		if b, ok := r.s.books[*d.BookID]; ok {
			d.BookTitle = b.Title
		}
	}
	return d
}

func (r *awardRepository) listDetails(keep func(model.AwardDetail) bool) []model.AwardDetail {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	details := make([]model.AwardDetail, 0)
	for _, d := range r.s.awardDetails {
		if keep(d) {
			details = append(details, r.withNames(d))
		}
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].AwardYear != details[j].AwardYear {
			return details[i].AwardYear < details[j].AwardYear
		}
		return details[i].ID < details[j].ID
	})
	return details
}

func (r *awardRepository) ListDetailsByAward(_ context.Context, awardID int64) ([]model.AwardDetail, error) {
	return r.listDetails(func(d model.AwardDetail) bool {
		return d.AwardID != nil && *d.AwardID == awardID
	}), nil
}

func (r *awardRepository) ListDetailsByBook(_ context.Context, bookID int64) ([]model.AwardDetail, error) {
	return r.listDetails(func(d model.AwardDetail) bool {
		return d.BookID != nil && *d.BookID == bookID
	}), nil
}

func (r *awardRepository) GetDetail(_ context.Context, id int64) (*model.AwardDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.awardDetails[id]
	if !ok {
		return nil, model.ErrAwardDetailNotFound
	}
	d = r.withNames(d)
	return &d, nil
}

func (r *awardRepository) CreateDetail(_ context.Context, d *model.AwardDetail) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d.ID = r.s.nextID("award_details")
	r.s.awardDetails[d.ID] = *d
	return d.ID, nil
}

func (r *awardRepository) UpdateDetail(_ context.Context, d *model.AwardDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.awardDetails[d.ID]; !ok {
		return model.ErrAwardDetailNotFound
	}
	r.s.awardDetails[d.ID] = *d
	return nil
}

func (r *awardRepository) DeleteDetail(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.awardDetails[id]; !ok {
		return model.ErrAwardDetailNotFound
	}
	delete(r.s.awardDetails, id)
	return nil
}

func (r *awardRepository) BookExists(_ context.Context, bookID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.books[bookID]
	return ok, nil
}
