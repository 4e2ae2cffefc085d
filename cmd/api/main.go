package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"intern-tracker/internal/core/cache"
	"intern-tracker/internal/core/config"
	"intern-tracker/internal/core/database"
	"intern-tracker/internal/core/logger"
	"intern-tracker/internal/core/server"
	"intern-tracker/internal/domain"
	"intern-tracker/internal/feature/intern"
	"intern-tracker/internal/repo"
	"intern-tracker/internal/service"
	"intern-tracker/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	// Store; an unreachable database is fatal.
	store := mustOpenStore(cfg, log)
	log.Info("store ready", zap.String("driver", cfg.DB.Driver))

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer c.Close()
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	svc := service.NewInternService(store, c, time.Duration(cfg.Redis.StatsTTLSec)*time.Second)
	r := router.NewAPIEngine(log, svc)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("intern api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("interns", baseURL+"/api/interns"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("intern api start FAILED", zap.Error(err))
		}
	}()
	log.Info("intern api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("intern api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenStore(cfg *config.Config, l *zap.Logger) domain.InternRepository {
	if cfg.DB.Driver == "memory" {
		l.Warn("using in-memory store, records do not survive restarts")
		return repo.NewMemoryInternRepo()
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
		l.Fatal("db open", zap.Error(err))
	}
	if cfg.DB.AutoMigrate {
		if err := intern.Migrate(db); err != nil {
			l.Fatal("automigrate failed", zap.Error(err))
		}
		l.Info("automigrate done")
	}
	return repo.NewInternRepo(db)
}
