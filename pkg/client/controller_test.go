package client

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"intern-tracker/internal/repo"
	"intern-tracker/internal/service"
	"intern-tracker/internal/transport/http/router"
)

func init() { gin.SetMode(gin.TestMode) }

type ControllerSuite struct {
	suite.Suite
	srv *httptest.Server
	ct  *Controller
	ctx context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	svc := service.NewInternService(repo.NewMemoryInternRepo(), nil, 0)
	s.srv = httptest.NewServer(router.NewAPIEngine(zap.NewNop(), svc))
	s.ct = NewController(New(s.srv.URL))
	s.ctx = context.Background()
}

func (s *ControllerSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ControllerSuite) fields(name, email string) Fields {
	return Fields{Name: name, Email: email, Role: "Backend", Status: "Applied", Score: 70}
}

func (s *ControllerSuite) submit(f Fields) {
	s.ct.OpenCreate()
	s.Require().NoError(s.ct.Submit(s.ctx, f))
}

func (s *ControllerSuite) TestInitialRefresh() {
	s.ct.Refresh(s.ctx)
	st := s.ct.State()
	s.False(st.Loading)
	s.Empty(st.Err)
	s.Empty(st.Records)
	s.Equal(1, st.Pagination.Page)
}

func (s *ControllerSuite) TestSubmitCreateClosesModalAndRefetches() {
	s.ct.OpenCreate()
	s.True(s.ct.State().Modal.Open)

	s.Require().NoError(s.ct.Submit(s.ctx, s.fields("Ann Lee", "ann@x.com")))

	st := s.ct.State()
	s.False(st.Modal.Open)
	s.Require().Len(st.Records, 1)
	s.Equal("Ann Lee", st.Records[0].Name)
	s.EqualValues(1, st.Pagination.Total)
}

func (s *ControllerSuite) TestSubmitFailureKeepsModalOpenWithInlineError() {
	s.ct.OpenCreate()
	err := s.ct.Submit(s.ctx, Fields{Name: "A"})
	s.Require().Error(err)

	st := s.ct.State()
	s.True(st.Modal.Open, "modal stays open on failure")
	s.Contains(st.Modal.Err, "VALIDATION_ERROR")
	s.Contains(st.Modal.Err, "Name must be at least 2 characters long")
}

func (s *ControllerSuite) TestSubmitEditUpdatesRecord() {
	s.submit(s.fields("Ann Lee", "ann@x.com"))
	rec := s.ct.State().Records[0]

	s.ct.OpenEdit(rec)
	f := s.fields(rec.Name, rec.Email)
	f.Status = "Hired"
	s.Require().NoError(s.ct.Submit(s.ctx, f))

	st := s.ct.State()
	s.False(st.Modal.Open)
	s.Require().Len(st.Records, 1)
	s.Equal("Hired", st.Records[0].Status)
	s.Equal(rec.ID, st.Records[0].ID)
}

func (s *ControllerSuite) TestSearchAndFiltersResetPage() {
	for i := 0; i < 15; i++ {
		s.submit(s.fields(fmt.Sprintf("Intern %02d", i), fmt.Sprintf("i%02d@x.com", i)))
	}
	s.ct.SetPage(s.ctx, 2)
	s.Equal(2, s.ct.State().Pagination.Page)

	s.ct.SetSearch(s.ctx, "i0")
	st := s.ct.State()
	s.Equal(1, st.Pagination.Page, "search resets page")
	s.EqualValues(10, st.Pagination.Total)

	s.ct.SetPage(s.ctx, 2)
	s.ct.SetStatusFilter(s.ctx, "Applied")
	s.Equal(1, s.ct.State().Pagination.Page, "filter resets page")

	s.ct.SetRoleFilter(s.ctx, "Frontend")
	st = s.ct.State()
	s.Equal(1, st.Pagination.Page)
	s.EqualValues(0, st.Pagination.Total, "no frontend interns")
}

func (s *ControllerSuite) TestListErrorSurfacesInline() {
	s.srv.Close() // fetch now fails at the transport
	s.ct.Refresh(s.ctx)
	st := s.ct.State()
	s.NotEmpty(st.Err)
	s.False(st.Loading)
}

func (s *ControllerSuite) TestDeleteFailureGoesToAlertHook() {
	var alerted string
	s.ct.Alert = func(msg string) { alerted = msg }

	err := s.ct.Delete(s.ctx, "not-a-real-id")
	s.Require().Error(err)
	s.Contains(alerted, "NOT_FOUND")
}

func (s *ControllerSuite) TestDeleteRefetches() {
	s.submit(s.fields("Ann Lee", "ann@x.com"))
	id := s.ct.State().Records[0].ID

	s.Require().NoError(s.ct.Delete(s.ctx, id))
	st := s.ct.State()
	s.Empty(st.Records)
	s.EqualValues(0, st.Pagination.Total)
}

func (s *ControllerSuite) TestStatsUseLoadedPageOnly() {
	for i := 0; i < 12; i++ {
		f := s.fields(fmt.Sprintf("Intern %02d", i), fmt.Sprintf("i%02d@x.com", i))
		f.Score = 100 // newest 10 records all score 100
		if i < 2 {
			f.Score = 0 // the two oldest fall off the first page
			f.Status = "Hired"
		}
		s.submit(f)
	}

	stats := s.ct.Stats()
	s.EqualValues(12, stats.Total, "total comes from pagination metadata")
	s.Equal(0, stats.Hired, "hired records are beyond the loaded page")
	s.Equal(100, stats.AvgScore, "average covers the loaded page only")
}

func (s *ControllerSuite) TestStaleResponseDoesNotOverwriteNewerState() {
	s.submit(s.fields("Ann Lee", "ann@x.com"))
	stale := s.ct.seq.Load() - 1 // sequence older than the applied fetch

	s.ct.apply(stale, &ListResponse{
		Data:       []Intern{{Name: "Ghost"}},
		Pagination: Pagination{Page: 9, Limit: 10},
	}, nil)

	st := s.ct.State()
	s.Require().Len(st.Records, 1)
	s.Equal("Ann Lee", st.Records[0].Name, "stale data discarded")
	s.Equal(1, st.Pagination.Page)
}
