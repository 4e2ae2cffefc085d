package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
	// File enables rotated file output alongside stdout when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type DB struct {
	// Driver is postgres, mysql, or memory (no persistence; dev/test only).
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// StatsTTLSec bounds staleness of the cached stats aggregate.
	StatsTTLSec int `mapstructure:"stats_ttl_sec"`
}

type Config struct {
	App   App
	Log   Log
	DB    DB
	Redis Redis `mapstructure:"redis"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}

	if c.DB.Driver == "" {
		c.DB.Driver = "memory"
	}
	if c.DB.Driver != "memory" && c.DB.DSN == "" {
		log.Fatalf("db.dsn is required for driver %q", c.DB.Driver)
	}
	if c.App.HTTP.Port == 0 {
		log.Fatalf("app.http.port is required")
	}
	return &c
}
