package intern

import (
	"time"

	"gorm.io/gorm"

	"intern-tracker/internal/domain"
)

type InternModel struct {
	ID     string `gorm:"primaryKey;type:varchar(32)"`
	Name   string `gorm:"size:128;not null"`
	Email  string `gorm:"uniqueIndex;size:255;not null"`
	Role   string `gorm:"size:16;not null"`
	Status string `gorm:"size:16;not null"`
	Score  int    `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (InternModel) TableName() string { return "interns" }

// Migrate creates the interns table and applies driver-specific fixups.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&InternModel{}); err != nil {
		return err
	}
	for _, stmt := range migrateFixups(db.Dialector.Name()) {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// migrateFixups returns DDL that AutoMigrate cannot express. Email uniqueness
// is case-sensitive; mysql's default utf8mb4 collations compare
// case-insensitively, so the column is pinned to the binary collation there.
// Postgres and the memory store already compare bytewise.
func migrateFixups(dialect string) []string {
	if dialect != "mysql" {
		return nil
	}
	return []string{
		"ALTER TABLE interns MODIFY email VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
	}
}

func FromDomain(i *domain.Intern) *InternModel {
	return &InternModel{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		Role:      i.Role,
		Status:    i.Status,
		Score:     i.Score,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func (m *InternModel) Domain() *domain.Intern {
	return &domain.Intern{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		Status:    m.Status,
		Score:     m.Score,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
