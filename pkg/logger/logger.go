// Package logger builds the zap loggers used across the module.
package logger

import "go.uber.org/zap"

type LoggerConfig struct {
	Debug bool
}

// NewLogger returns a production zap logger, or a development logger with
// debug level when Debug is set.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg != nil && cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
