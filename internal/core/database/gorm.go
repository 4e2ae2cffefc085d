package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

var ErrUnsupportedDriver = errors.New("unsupported database driver")

type Opts struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

// NewGorm opens and pings the database; callers treat an error as fatal.
func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres":
		dial = postgres.Open(o.DSN)
	case "mysql":
		dial = mysql.Open(o.DSN)
	default:
		return nil, ErrUnsupportedDriver
	}

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	db = db.Session(&gorm.Session{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
	})
	return db, nil
}
