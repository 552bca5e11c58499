package logging

import (
	"bytes"
	"testing"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("respects configured level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "warn"}, zapcore.AddSync(&buf))

		log.Info("hidden")
		log.Warn("shown")
		_ = log.Sync()

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
		assert.Contains(t, out, "WARN")
		assert.Contains(t, out, "particlefield")
	})

	t.Run("falls back to info on a bad level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "loud"}, zapcore.AddSync(&buf))

		log.Debug("debug line")
		log.Info("info line")
		_ = log.Sync()

		assert.NotContains(t, buf.String(), "debug line")
		assert.Contains(t, buf.String(), "info line")
	})

	t.Run("plain levels without color", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "info", Color: false}, zapcore.AddSync(&buf))

		log.Info("x")
		_ = log.Sync()

		assert.NotContains(t, buf.String(), "\x1b[")
	})
}
