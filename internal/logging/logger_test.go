package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"mbg_outreach/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("json info", func(t *testing.T) {
		logger, err := New(config.LogConfig{Level: "info", Format: "json"})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if logger.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("debug should be disabled at info level")
		}
		if !logger.Core().Enabled(zapcore.InfoLevel) {
			t.Errorf("info should be enabled")
		}
	})

	t.Run("console debug", func(t *testing.T) {
		logger, err := New(config.LogConfig{Level: "debug", Format: "console"})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if !logger.Core().Enabled(zapcore.DebugLevel) {
			t.Errorf("debug should be enabled")
		}
	})

	t.Run("bad level", func(t *testing.T) {
		if _, err := New(config.LogConfig{Level: "loud", Format: "json"}); err == nil {
			t.Fatalf("New() error = nil, want error")
		}
	})
}
