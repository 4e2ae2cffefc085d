package domain

import (
	"context"
	"strings"
	"time"
)

// Role values.
const (
	RoleFrontend  = "Frontend"
	RoleBackend   = "Backend"
	RoleFullstack = "Fullstack"
)

// Status values.
const (
	StatusApplied      = "Applied"
	StatusInterviewing = "Interviewing"
	StatusHired        = "Hired"
	StatusRejected     = "Rejected"
)

type Intern struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InternInput is the mutable field set of an intern as supplied by callers.
// Nil means the field was not supplied, which matters for PATCH.
type InternInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
	Score  *int    `json:"score"`
}

// NewIntern validates a full field set and returns an intern ready for the
// store to persist. ID and timestamps are assigned by the store.
func NewIntern(in InternInput) (*Intern, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return &Intern{
		Name:   *in.Name,
		Email:  *in.Email,
		Role:   *in.Role,
		Status: *in.Status,
		Score:  *in.Score,
	}, nil
}

// Patched returns a copy of i with the supplied fields replaced, re-validated
// as a whole. The receiver is left untouched.
func (i Intern) Patched(in InternInput) (*Intern, error) {
	if in.Name != nil {
		i.Name = *in.Name
	}
	if in.Email != nil {
		i.Email = *in.Email
	}
	if in.Role != nil {
		i.Role = *in.Role
	}
	if in.Status != nil {
		i.Status = *in.Status
	}
	if in.Score != nil {
		i.Score = *in.Score
	}
	if err := validateIntern(&i); err != nil {
		return nil, err
	}
	return &i, nil
}

// Filter restricts a query. Zero values impose no restriction; unknown
// status/role values simply match nothing.
type Filter struct {
	Search string
	Status string
	Role   string
}

// Matches reports whether the intern satisfies every set condition.
// Search is a case-insensitive infix match on name or email.
func (f Filter) Matches(i *Intern) bool {
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		if !strings.Contains(strings.ToLower(i.Name), s) &&
			!strings.Contains(strings.ToLower(i.Email), s) {
			return false
		}
	}
	if f.Status != "" && i.Status != f.Status {
		return false
	}
	if f.Role != "" && i.Role != f.Role {
		return false
	}
	return true
}

// Key returns a stable cache key fragment for the filter.
func (f Filter) Key() string {
	return f.Search + "|" + f.Status + "|" + f.Role
}

// Stats is an aggregate over a filtered record set.
type Stats struct {
	Total        int64   `json:"total"`
	Hired        int64   `json:"hired"`
	Interviewing int64   `json:"interviewing"`
	AvgScore     float64 `json:"avgScore"`
}

type InternRepository interface {
	// Create persists a new intern, assigning ID and timestamps.
	Create(ctx context.Context, i *Intern) error
	FindByID(ctx context.Context, id string) (*Intern, error)
	// Query returns matching interns newest-created-first, sliced by skip/limit.
	Query(ctx context.Context, f Filter, skip, limit int) ([]Intern, error)
	Count(ctx context.Context, f Filter) (int64, error)
	// Update saves an already-validated intern and refreshes UpdatedAt.
	Update(ctx context.Context, i *Intern) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, f Filter) (*Stats, error)
}
