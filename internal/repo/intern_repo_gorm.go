package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"intern-tracker/internal/domain"
	"intern-tracker/internal/feature/intern"
	"intern-tracker/pkg/utils"
)

type InternRepo struct{ db *gorm.DB }

func NewInternRepo(db *gorm.DB) *InternRepo { return &InternRepo{db: db} }

func (r *InternRepo) Create(ctx context.Context, i *domain.Intern) error {
	m := intern.FromDomain(i)
	if m.ID == "" {
		m.ID = utils.NewID()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	*i = *m.Domain()
	return nil
}

func (r *InternRepo) FindByID(ctx context.Context, id string) (*domain.Intern, error) {
	if !utils.ValidID(id) {
		return nil, &domain.InvalidIDError{ID: id}
	}
	var m intern.InternModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m.Domain(), nil
}

func (r *InternRepo) Query(ctx context.Context, f domain.Filter, skip, limit int) ([]domain.Intern, error) {
	var ms []intern.InternModel
	err := r.scope(ctx, f).
		Order("created_at DESC").
		Limit(limit).
		Offset(skip).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Intern, 0, len(ms))
	for i := range ms {
		out = append(out, *ms[i].Domain())
	}
	return out, nil
}

func (r *InternRepo) Count(ctx context.Context, f domain.Filter) (int64, error) {
	var total int64
	if err := r.scope(ctx, f).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *InternRepo) Update(ctx context.Context, i *domain.Intern) error {
	m := intern.FromDomain(i)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	*i = *m.Domain()
	return nil
}

func (r *InternRepo) Delete(ctx context.Context, id string) error {
	if !utils.ValidID(id) {
		return &domain.InvalidIDError{ID: id}
	}
	res := r.db.WithContext(ctx).Delete(&intern.InternModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InternRepo) Stats(ctx context.Context, f domain.Filter) (*domain.Stats, error) {
	var s domain.Stats
	err := r.scope(ctx, f).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN status = 'Hired' THEN 1 ELSE 0 END), 0) AS hired, " +
			"COALESCE(SUM(CASE WHEN status = 'Interviewing' THEN 1 ELSE 0 END), 0) AS interviewing, " +
			"COALESCE(AVG(score), 0) AS avg_score").
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *InternRepo) scope(ctx context.Context, f domain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&intern.InternModel{})
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	return q
}

// isDupKey sniffs driver-specific unique violation messages rather than
// depending on gorm.ErrDuplicatedKey, which varies across gorm versions.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
