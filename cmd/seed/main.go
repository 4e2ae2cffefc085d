// seed fills the configured store with demo intern records so the dashboard
// has something to show during development.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"intern-tracker/internal/core/config"
	"intern-tracker/internal/core/database"
	"intern-tracker/internal/core/logger"
	"intern-tracker/internal/domain"
	"intern-tracker/internal/feature/intern"
	"intern-tracker/internal/repo"
	"intern-tracker/internal/service"
)

type seedRow struct {
	name, email, role, status string
	score                     int
}

var rows = []seedRow{
	{"John Doe", "john.doe@example.com", domain.RoleFrontend, domain.StatusInterviewing, 82},
	{"Jane Doe", "jane.doe@example.com", domain.RoleBackend, domain.StatusHired, 91},
	{"Ann Lee", "ann.lee@example.com", domain.RoleBackend, domain.StatusApplied, 70},
	{"Omar Haddad", "omar.haddad@example.com", domain.RoleFullstack, domain.StatusApplied, 64},
	{"Mei Chen", "mei.chen@example.com", domain.RoleFrontend, domain.StatusHired, 88},
	{"Luca Rossi", "luca.rossi@example.com", domain.RoleFullstack, domain.StatusRejected, 41},
	{"Priya Nair", "priya.nair@example.com", domain.RoleBackend, domain.StatusInterviewing, 77},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	if cfg.DB.Driver == "memory" {
		log.Fatal("seeding the memory driver is pointless, configure postgres or mysql")
	}
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := intern.Migrate(db); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	svc := service.NewInternService(repo.NewInternRepo(db), nil, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, skipped := 0, 0
	for _, row := range rows {
		in := domain.InternInput{
			Name:   ptr(row.name),
			Email:  ptr(row.email),
			Role:   ptr(row.role),
			Status: ptr(row.status),
			Score:  ptrInt(row.score),
		}
		if _, err := svc.Create(ctx, in); err != nil {
			// Re-running the seeder hits the unique email index; not an error.
			skipped++
			log.Debug("skip", zap.String("email", row.email), zap.Error(err))
			continue
		}
		created++
	}
	log.Info("seed done", zap.Int("created", created), zap.Int("skipped", skipped))
}

func ptr(s string) *string { return &s }
func ptrInt(n int) *int    { return &n }
