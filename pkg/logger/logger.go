// Package logger builds the zap loggers used across the service.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	level       zapcore.Level
	development bool
}

// Option customises the logger built by New.
type Option func(*options)

// WithLevel sets the minimum enabled level. Default is Info.
func WithLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithDevelopment switches to zap's human readable development encoder.
func WithDevelopment(development bool) Option {
	return func(o *options) {
		o.development = development
	}
}

// New returns a sugared logger tagged with the service name.
// If zap fails to build, a no-op logger is returned.
func New(service string, opts ...Option) *zap.SugaredLogger {
	o := options{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(&o)
	}

	config := zap.NewProductionConfig()
	if o.development {
		config = zap.NewDevelopmentConfig()
	}

	config.Level = zap.NewAtomicLevelAt(o.level)
	config.DisableStacktrace = true
	config.InitialFields = map[string]any{"service": service}
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	log, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}

	return log.Sugar()
}
