package client

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
)

type Filters struct {
	Status string
	Role   string
}

type Modal struct {
	Open    bool
	Editing *Intern
	// Err is the inline form error shown while the modal stays open.
	Err string
}

// State is the dashboard's single state shape.
type State struct {
	Records    []Intern
	Loading    bool
	Err        string
	Pagination Pagination
	Search     string
	Filters    Filters
	Modal      Modal
}

// Stats are the display cards. They are computed from the loaded page only
// (except Total, which comes from pagination metadata), so hired/interviewing
// and the average reflect at most one page of records.
type Stats struct {
	Total        int64
	Hired        int
	Interviewing int
	AvgScore     int
}

// Controller owns the dashboard state and its transitions. Changing search,
// filters, or page triggers a re-fetch; search and filter changes reset the
// page to 1. Every fetch carries a sequence number and a response older than
// the latest issued fetch is discarded, so out-of-order responses can never
// overwrite newer state.
type Controller struct {
	api *Client

	// Alert receives delete failures (the blocking-alert surface).
	// A nil Alert drops them; Delete still returns the error.
	Alert func(msg string)

	mu  sync.Mutex
	st  State
	seq atomic.Uint64
}

func NewController(api *Client) *Controller {
	return &Controller{
		api: api,
		st:  State{Loading: true, Pagination: Pagination{Page: 1, Limit: 10}},
	}
}

// State returns a snapshot safe for rendering.
func (ct *Controller) State() State {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	out := ct.st
	out.Records = append([]Intern(nil), ct.st.Records...)
	if ct.st.Modal.Editing != nil {
		cp := *ct.st.Modal.Editing
		out.Modal.Editing = &cp
	}
	return out
}

// Refresh fetches the list for the current search/filter/page state.
func (ct *Controller) Refresh(ctx context.Context) {
	ct.mu.Lock()
	ct.st.Loading = true
	q := ListQuery{
		Q:      ct.st.Search,
		Status: ct.st.Filters.Status,
		Role:   ct.st.Filters.Role,
		Page:   ct.st.Pagination.Page,
		Limit:  ct.st.Pagination.Limit,
	}
	n := ct.seq.Add(1)
	ct.mu.Unlock()

	res, err := ct.api.List(ctx, q)
	ct.apply(n, res, err)
}

func (ct *Controller) apply(n uint64, res *ListResponse, err error) {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	if n != ct.seq.Load() {
		return // stale response, a newer fetch owns the state
	}
	ct.st.Loading = false
	if err != nil {
		ct.st.Err = err.Error()
		return
	}
	ct.st.Err = ""
	ct.st.Records = res.Data
	ct.st.Pagination = res.Pagination
}

func (ct *Controller) SetSearch(ctx context.Context, q string) {
	ct.mu.Lock()
	ct.st.Search = q
	ct.st.Pagination.Page = 1
	ct.mu.Unlock()
	ct.Refresh(ctx)
}

func (ct *Controller) SetStatusFilter(ctx context.Context, status string) {
	ct.mu.Lock()
	ct.st.Filters.Status = status
	ct.st.Pagination.Page = 1
	ct.mu.Unlock()
	ct.Refresh(ctx)
}

func (ct *Controller) SetRoleFilter(ctx context.Context, role string) {
	ct.mu.Lock()
	ct.st.Filters.Role = role
	ct.st.Pagination.Page = 1
	ct.mu.Unlock()
	ct.Refresh(ctx)
}

func (ct *Controller) SetPage(ctx context.Context, page int) {
	if page < 1 {
		page = 1
	}
	ct.mu.Lock()
	ct.st.Pagination.Page = page
	ct.mu.Unlock()
	ct.Refresh(ctx)
}

func (ct *Controller) OpenCreate() {
	ct.mu.Lock()
	ct.st.Modal = Modal{Open: true}
	ct.mu.Unlock()
}

func (ct *Controller) OpenEdit(rec Intern) {
	ct.mu.Lock()
	ct.st.Modal = Modal{Open: true, Editing: &rec}
	ct.mu.Unlock()
}

func (ct *Controller) CloseModal() {
	ct.mu.Lock()
	ct.st.Modal = Modal{}
	ct.mu.Unlock()
}

// Submit creates or updates depending on whether the modal is editing an
// existing record. On success the modal closes and the list re-fetches; on
// failure the modal stays open with the error inline.
func (ct *Controller) Submit(ctx context.Context, f Fields) error {
	ct.mu.Lock()
	editing := ct.st.Modal.Editing
	ct.mu.Unlock()

	var err error
	if editing != nil {
		_, err = ct.api.Update(ctx, editing.ID, f)
	} else {
		_, err = ct.api.Create(ctx, f)
	}
	if err != nil {
		ct.mu.Lock()
		ct.st.Modal.Err = err.Error()
		ct.mu.Unlock()
		return err
	}

	ct.mu.Lock()
	ct.st.Modal = Modal{}
	ct.mu.Unlock()
	ct.Refresh(ctx)
	return nil
}

// Delete removes a record and re-fetches; failures go to the Alert hook.
func (ct *Controller) Delete(ctx context.Context, id string) error {
	if err := ct.api.Delete(ctx, id); err != nil {
		if ct.Alert != nil {
			ct.Alert(err.Error())
		}
		return err
	}
	ct.Refresh(ctx)
	return nil
}

// Stats computes the display cards over the currently loaded page.
func (ct *Controller) Stats() Stats {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	s := Stats{Total: ct.st.Pagination.Total}
	sum := 0
	for i := range ct.st.Records {
		sum += ct.st.Records[i].Score
		switch ct.st.Records[i].Status {
		case "Hired":
			s.Hired++
		case "Interviewing":
			s.Interviewing++
		}
	}
	if len(ct.st.Records) > 0 {
		s.AvgScore = int(math.Round(float64(sum) / float64(len(ct.st.Records))))
	}
	return s
}
