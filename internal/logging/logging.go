// Package logging builds the application logger from config.
package logging

import (
	"go.uber.org/zap"

	"github.com/example/dispatchiq/internal/config"
)

// New constructs a zap logger per the log config. Unknown levels fall back
// to info rather than failing startup.
func New(cfg config.Log) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Format == "json" {
		zapConfig = zap.NewProductionConfig()
		zapConfig.Encoding = "json"
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Encoding = "console"
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	// CLI runs log to stderr so command output stays pipeable.
	zapConfig.OutputPaths = []string{"stderr"}

	return zapConfig.Build()
}
