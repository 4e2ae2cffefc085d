package repo

import (
	"context"
	"sync"
	"time"

	"intern-tracker/internal/domain"
	"intern-tracker/pkg/utils"
)

// MemoryInternRepo is a mutex-guarded in-memory implementation of
// domain.InternRepository. It backs the "memory" database driver and the test
// suites; the write lock serializes conflicting creates so that exactly one of
// two same-email writers wins.
type MemoryInternRepo struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Intern
	order []string // insertion order; newest last
}

func NewMemoryInternRepo() *MemoryInternRepo {
	return &MemoryInternRepo{byID: make(map[string]*domain.Intern)}
}

func (r *MemoryInternRepo) Create(_ context.Context, i *domain.Intern) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cur := range r.byID {
		if cur.Email == i.Email {
			return domain.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	i.ID = utils.NewID()
	i.CreatedAt = now
	i.UpdatedAt = now
	cp := *i
	r.byID[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *MemoryInternRepo) FindByID(_ context.Context, id string) (*domain.Intern, error) {
	if !utils.ValidID(id) {
		return nil, &domain.InvalidIDError{ID: id}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cur, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *cur
	return &cp, nil
}

func (r *MemoryInternRepo) Query(_ context.Context, f domain.Filter, skip, limit int) ([]domain.Intern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// limit is caller-controlled; the preallocation must not be.
	out := make([]domain.Intern, 0, max(0, min(limit, len(r.order))))
	seen := 0
	for idx := len(r.order) - 1; idx >= 0; idx-- {
		cur := r.byID[r.order[idx]]
		if !f.Matches(cur) {
			continue
		}
		if seen < skip {
			seen++
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, *cur)
	}
	return out, nil
}

func (r *MemoryInternRepo) Count(_ context.Context, f domain.Filter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, id := range r.order {
		if f.Matches(r.byID[id]) {
			total++
		}
	}
	return total, nil
}

func (r *MemoryInternRepo) Update(_ context.Context, i *domain.Intern) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[i.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, cur := range r.byID {
		if id != i.ID && cur.Email == i.Email {
			return domain.ErrDuplicateEmail
		}
	}
	i.UpdatedAt = time.Now().UTC()
	cp := *i
	r.byID[cp.ID] = &cp
	return nil
}

func (r *MemoryInternRepo) Delete(_ context.Context, id string) error {
	if !utils.ValidID(id) {
		return &domain.InvalidIDError{ID: id}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for idx, cur := range r.order {
		if cur == id {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryInternRepo) Stats(_ context.Context, f domain.Filter) (*domain.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := &domain.Stats{}
	var sum int64
	for _, id := range r.order {
		cur := r.byID[id]
		if !f.Matches(cur) {
			continue
		}
		s.Total++
		sum += int64(cur.Score)
		switch cur.Status {
		case domain.StatusHired:
			s.Hired++
		case domain.StatusInterviewing:
			s.Interviewing++
		}
	}
	if s.Total > 0 {
		s.AvgScore = float64(sum) / float64(s.Total)
	}
	return s, nil
}
