package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, MaxParticles, cfg.Particles.Max)
	assert.Equal(t, SpawnBatch, cfg.Particles.Batch)
	assert.Equal(t, RepulsionRadius, cfg.Particles.RepulsionRadius)
	assert.Equal(t, OpacityDecay, cfg.Particles.OpacityDecay)
	assert.Equal(t, Label, cfg.Text.Label)
	assert.Equal(t, ScrollDebounce, cfg.Scroll.Debounce)
	assert.False(t, cfg.Sound.Enabled)
	assert.NoError(t, cfg.Validate())

	dark, light := cfg.Text.Colors()
	r, g, b := dark.RGB255()
	assert.Equal(t, []uint8{30, 30, 30}, []uint8{r, g, b})
	r, g, b = light.RGB255()
	assert.Equal(t, []uint8{255, 255, 255}, []uint8{r, g, b})
	r, g, b = cfg.Window.BackgroundColor().RGB255()
	assert.Equal(t, []uint8{0x5a, 0x62, 0x70}, []uint8{r, g, b})
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		yaml := []byte("particles:\n  max: 100\n  batch: 3\nscroll:\n  debounce: 350ms\nsound:\n  enabled: true\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), yaml, 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Particles.Max)
		assert.Equal(t, 3, cfg.Particles.Batch)
		assert.Equal(t, 350*time.Millisecond, cfg.Scroll.Debounce)
		assert.True(t, cfg.Sound.Enabled)
		assert.Equal(t, RepulsionStrength, cfg.Particles.RepulsionStrength)
	})

	t.Run("file colors are parsed", func(t *testing.T) {
		dir := t.TempDir()
		yaml := []byte("text:\n  light: \"#808080\"\nwindow:\n  background: \"#000\"\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), yaml, 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		_, light := cfg.Text.Colors()
		r, g, b := light.RGB255()
		assert.Equal(t, []uint8{128, 128, 128}, []uint8{r, g, b})
		r, g, b = cfg.Window.BackgroundColor().RGB255()
		assert.Equal(t, []uint8{0, 0, 0}, []uint8{r, g, b})
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		dir := t.TempDir()
		yaml := []byte("text:\n  ease_factor: 2\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), yaml, 0o644))

		_, err := Load(dir)
		assert.ErrorContains(t, err, "ease_factor")
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte("particles: [\n"), 0o644))

		_, err := Load(dir)
		assert.ErrorContains(t, err, "reading config")
	})
}

func TestValidateParsesColors(t *testing.T) {
	cfg := Default()
	cfg.Text.Dark = "#102030"

	require.NoError(t, cfg.Validate())
	dark, _ := cfg.Text.Colors()
	r, g, b := dark.RGB255()
	assert.Equal(t, []uint8{0x10, 0x20, 0x30}, []uint8{r, g, b})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero cap", func(c *Config) { c.Particles.Max = 0 }, "particles.max"},
		{"zero batch", func(c *Config) { c.Particles.Batch = 0 }, "particles.batch"},
		{"inverted radius", func(c *Config) { c.Particles.MaxRadius = 0.5 }, "radius"},
		{"no decay", func(c *Config) { c.Particles.OpacityDecay = 0 }, "opacity_decay"},
		{"bad color", func(c *Config) { c.Text.Light = "white" }, "text.light"},
		{"bad window", func(c *Config) { c.Window.Width = 0 }, "window size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
