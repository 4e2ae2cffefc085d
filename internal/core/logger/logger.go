package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type FileRotate struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Options struct {
	Level       string // debug / info / warn / error
	JSON        bool
	AddCaller   bool
	Development bool
	Rotate      FileRotate
}

func New(level string, json bool) (*zap.Logger, func()) {
	return buildLogger(Options{
		Level:       level,
		JSON:        json,
		AddCaller:   true,
		Development: !json,
	})
}

func NewWithRotate(level string, json bool, filename string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*zap.Logger, func()) {
	return buildLogger(Options{
		Level:       level,
		JSON:        json,
		AddCaller:   true,
		Development: !json,
		Rotate: FileRotate{
			Enable:     true,
			Filename:   filename,
			MaxSizeMB:  maxSizeMB,
			MaxBackups: maxBackups,
			MaxAgeDays: maxAgeDays,
			Compress:   compress,
		},
	})
}

func buildLogger(opt Options) (*zap.Logger, func()) {
	var lvl zapcore.Level
	if err := lvl.Set(opt.Level); err != nil {
		lvl = zapcore.InfoLevel
	}

	var enc zapcore.Encoder
	if opt.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.TimeKey = "ts"
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	var sinks []zapcore.Core
	sinks = append(sinks, zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl))

	if opt.Rotate.Enable {
		rotator := &lumberjack.Logger{
			Filename:   opt.Rotate.Filename,
			MaxSize:    maxInt(1, opt.Rotate.MaxSizeMB),
			MaxBackups: maxInt(0, opt.Rotate.MaxBackups),
			MaxAge:     maxInt(0, opt.Rotate.MaxAgeDays),
			Compress:   opt.Rotate.Compress,
		}
		sinks = append(sinks, zapcore.NewCore(enc, zapcore.AddSync(rotWriter{rotator}), lvl))
	}

	core := zapcore.NewTee(sinks...)
	sampled := zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)

	opts := []zap.Option{}
	if opt.AddCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	if opt.Development {
		opts = append(opts, zap.Development())
	}
	l := zap.New(sampled, opts...)
	return l, func() { _ = l.Sync() }
}

// rotWriter gives lumberjack a no-op Sync so it satisfies zapcore.WriteSyncer.
type rotWriter struct{ *lumberjack.Logger }

func (w rotWriter) Write(p []byte) (int, error) { return w.Logger.Write(p) }
func (w rotWriter) Sync() error                 { return nil }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
