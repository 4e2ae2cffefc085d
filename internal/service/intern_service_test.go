package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"intern-tracker/internal/domain"
	"intern-tracker/internal/repo"
)

type InternServiceSuite struct {
	suite.Suite
	svc *InternService
	ctx context.Context
}

func TestInternServiceSuite(t *testing.T) {
	suite.Run(t, new(InternServiceSuite))
}

func (s *InternServiceSuite) SetupTest() {
	s.svc = NewInternService(repo.NewMemoryInternRepo(), nil, 0)
	s.ctx = context.Background()
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func (s *InternServiceSuite) input(name, email string) domain.InternInput {
	return domain.InternInput{
		Name:   strPtr(name),
		Email:  strPtr(email),
		Role:   strPtr(domain.RoleBackend),
		Status: strPtr(domain.StatusApplied),
		Score:  intPtr(70),
	}
}

func (s *InternServiceSuite) seed(n int) {
	for i := 0; i < n; i++ {
		_, err := s.svc.Create(s.ctx, s.input(
			fmt.Sprintf("Intern %02d", i), fmt.Sprintf("i%02d@x.com", i)))
		s.Require().NoError(err)
	}
}

func (s *InternServiceSuite) TestListDefaultsAndCoercion() {
	s.seed(3)
	for _, tc := range []struct{ page, limit string }{
		{"", ""},
		{"abc", "xyz"},
		{"0", "-5"},
		{"-1", "0"},
	} {
		res, err := s.svc.List(s.ctx, domain.Filter{}, tc.page, tc.limit)
		s.Require().NoError(err)
		s.Equal(1, res.Pagination.Page, "page %q", tc.page)
		s.Equal(10, res.Pagination.Limit, "limit %q", tc.limit)
	}
}

func (s *InternServiceSuite) TestListEnormousLimitStillServes() {
	s.seed(3)
	res, err := s.svc.List(s.ctx, domain.Filter{}, "1", "4611686018427387904")
	s.Require().NoError(err)
	s.Len(res.Records, 3)
	s.EqualValues(3, res.Pagination.Total)
	s.Equal(1, res.Pagination.Pages)
}

func (s *InternServiceSuite) TestListPaginationArithmetic() {
	s.seed(23)
	res, err := s.svc.List(s.ctx, domain.Filter{}, "1", "10")
	s.Require().NoError(err)
	s.EqualValues(23, res.Pagination.Total)
	s.Equal(3, res.Pagination.Pages)

	// count(filter) == sum of records over all pages
	sum := 0
	for page := 1; page <= res.Pagination.Pages; page++ {
		pres, err := s.svc.List(s.ctx, domain.Filter{}, fmt.Sprint(page), "10")
		s.Require().NoError(err)
		sum += len(pres.Records)
	}
	s.Equal(23, sum)
}

func (s *InternServiceSuite) TestListPageBeyondRangeIsNotAnError() {
	s.seed(5)
	res, err := s.svc.List(s.ctx, domain.Filter{}, "99", "10")
	s.Require().NoError(err)
	s.Empty(res.Records)
	s.Equal(99, res.Pagination.Page)
	s.EqualValues(5, res.Pagination.Total)
	s.Equal(1, res.Pagination.Pages)
}

func (s *InternServiceSuite) TestListEmptyStore() {
	res, err := s.svc.List(s.ctx, domain.Filter{}, "", "")
	s.Require().NoError(err)
	s.Empty(res.Records)
	s.EqualValues(0, res.Pagination.Total)
	s.Equal(0, res.Pagination.Pages)
}

func (s *InternServiceSuite) TestListAppliesFilter() {
	s.seed(3)
	hired, err := s.svc.Create(s.ctx, domain.InternInput{
		Name:   strPtr("John Doe"),
		Email:  strPtr("john.doe@x.com"),
		Role:   strPtr(domain.RoleFrontend),
		Status: strPtr(domain.StatusHired),
		Score:  intPtr(88),
	})
	s.Require().NoError(err)

	res, err := s.svc.List(s.ctx, domain.Filter{Status: domain.StatusHired}, "", "")
	s.Require().NoError(err)
	s.Require().Len(res.Records, 1)
	s.Equal(hired.ID, res.Records[0].ID)
	s.EqualValues(1, res.Pagination.Total)
}

func (s *InternServiceSuite) TestCreateAggregatesMissingFields() {
	_, err := s.svc.Create(s.ctx, domain.InternInput{Name: strPtr("Ann Lee")})
	var ve *domain.ValidationError
	s.Require().ErrorAs(err, &ve)
	s.Len(ve.Violations, 4)
}

func (s *InternServiceSuite) TestCreateThenGetRoundTrips() {
	rec, err := s.svc.Create(s.ctx, s.input("Ann Lee", "ann@x.com"))
	s.Require().NoError(err)
	s.Require().NotEmpty(rec.ID)

	got, err := s.svc.Get(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal("Ann Lee", got.Name)
	s.Equal("ann@x.com", got.Email)
	s.Equal(domain.RoleBackend, got.Role)
	s.Equal(70, got.Score)
}

func (s *InternServiceSuite) TestUpdateRejectsOutOfRangeScoreAndKeepsStored() {
	rec, err := s.svc.Create(s.ctx, s.input("Ann Lee", "ann@x.com"))
	s.Require().NoError(err)

	_, err = s.svc.Update(s.ctx, rec.ID, domain.InternInput{Score: intPtr(101)})
	var ve *domain.ValidationError
	s.Require().ErrorAs(err, &ve)

	got, err := s.svc.Get(s.ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal(70, got.Score, "stored score unchanged")
}

func (s *InternServiceSuite) TestUpdatePartialFields() {
	rec, err := s.svc.Create(s.ctx, s.input("Ann Lee", "ann@x.com"))
	s.Require().NoError(err)

	got, err := s.svc.Update(s.ctx, rec.ID, domain.InternInput{Status: strPtr(domain.StatusHired)})
	s.Require().NoError(err)
	s.Equal(domain.StatusHired, got.Status)
	s.Equal("Ann Lee", got.Name)
	s.Equal("ann@x.com", got.Email)
}

func (s *InternServiceSuite) TestUpdateMissingRecord() {
	_, err := s.svc.Update(s.ctx, "00000000000000000000000000000000",
		domain.InternInput{Status: strPtr(domain.StatusHired)})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *InternServiceSuite) TestDeleteMissingRecord() {
	s.ErrorIs(s.svc.Delete(s.ctx, "00000000000000000000000000000000"), domain.ErrNotFound)
}

func (s *InternServiceSuite) TestStatsWithoutCacheHitsStore() {
	s.seed(4)
	stats, err := s.svc.Stats(s.ctx, domain.Filter{})
	s.Require().NoError(err)
	s.EqualValues(4, stats.Total)
	s.InDelta(70.0, stats.AvgScore, 0.001)
}
