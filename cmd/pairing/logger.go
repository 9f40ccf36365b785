package main

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pairing/config"
)

// buildLogger builds a production zap logger for the logging settings.
// The text format switches to the console encoder.
func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = level
	if lc.Format == "text" {
		zc.Encoding = "console"
	}

	return zc.Build()
}
