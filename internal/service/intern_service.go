package service

import (
	"context"
	"strconv"
	"time"

	"intern-tracker/internal/core/cache"
	"intern-tracker/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	statsKeyPrefix = "interns:stats:"
)

type InternService struct {
	repo     domain.InternRepository
	cache    *cache.Cache // nil disables stats caching
	statsTTL time.Duration
}

func NewInternService(repo domain.InternRepository, c *cache.Cache, statsTTL time.Duration) *InternService {
	if statsTTL <= 0 {
		statsTTL = 30 * time.Second
	}
	return &InternService{repo: repo, cache: c, statsTTL: statsTTL}
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type ListResult struct {
	Records    []domain.Intern `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

// List returns one page of the filtered set plus pagination metadata computed
// over the whole filtered set. A page beyond the last yields an empty slice
// with correct metadata, never an error. Non-numeric or non-positive page and
// limit inputs fall back to 1 and 10.
func (s *InternService) List(ctx context.Context, f domain.Filter, page, limit string) (*ListResult, error) {
	p := atoiDefault(page, defaultPage)
	l := atoiDefault(limit, defaultLimit)
	skip := (p - 1) * l

	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.Query(ctx, f, skip, l)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Records: records,
		Pagination: Pagination{
			Page:  p,
			Limit: l,
			Total: total,
			Pages: int((total + int64(l) - 1) / int64(l)),
		},
	}, nil
}

func (s *InternService) Get(ctx context.Context, id string) (*domain.Intern, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InternService) Create(ctx context.Context, in domain.InternInput) (*domain.Intern, error) {
	rec, err := domain.NewIntern(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *InternService) Update(ctx context.Context, id string, in domain.InternInput) (*domain.Intern, error) {
	cur, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := cur.Patched(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *InternService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats aggregates over the full filtered set. With redis configured the
// result is cached for a short TTL, so it may lag writes by up to that TTL.
func (s *InternService) Stats(ctx context.Context, f domain.Filter) (*domain.Stats, error) {
	if s.cache == nil {
		return s.repo.Stats(ctx, f)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, statsKeyPrefix+f.Key(), s.statsTTL,
		func(ctx context.Context) (*domain.Stats, error) {
			return s.repo.Stats(ctx, f)
		})
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}
