// Package logger provides structured logging based on Zap.
//
// Loggers are configured from core/config's log section. Request
// handlers use WithRayID to correlate entries with the request's ray ID,
// and WithWedding to tag entries with the wedding being operated on.
package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap logger from the configuration. Debug level selects
// the development preset, everything else the production preset.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config
	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	return config.Build()
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals("ray_id").(string); ok && rid != "" {
		return l.With(zap.String("ray_id", rid))
	}
	return l
}

// WithWedding returns a logger with the wedding_id field set.
func WithWedding(l *zap.Logger, weddingID string) *zap.Logger {
	if weddingID == "" {
		return l
	}
	return l.With(zap.String("wedding_id", weddingID))
}
