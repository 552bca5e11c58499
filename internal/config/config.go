package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

const (
	WindowWidth  = 1024
	WindowHeight = 576

	// Particle field
	MaxParticles      = 2000
	SpawnBatch        = 5
	MinRadius         = 1.0
	MaxRadius         = 6.0
	RepulsionRadius   = 100.0
	RepulsionStrength = 0.1
	OpacityDecay      = 0.0015

	// Label
	Label      = "Villegazs"
	LabelSize  = 300.0
	EaseFactor = 0.05
	TextDark   = "#1e1e1e"
	TextLight  = "#ffffff"
	Background = "#5a6270"

	// Scroll
	ScrollThreshold = 50.0
	ScrollDebounce  = 200 * time.Millisecond
	ScrollStep      = 40.0
	MaxScroll       = 1200.0

	// Audio
	ChimeSampleRate = 44100
	ChimeDuration   = 180 * time.Millisecond

	// FileName is looked up (without extension) in the directory handed to Load.
	FileName = "particlefield"
)

type Config struct {
	Window    WindowConfig    `mapstructure:"window"`
	Particles ParticlesConfig `mapstructure:"particles"`
	Text      TextConfig      `mapstructure:"text"`
	Scroll    ScrollConfig    `mapstructure:"scroll"`
	Sound     SoundConfig     `mapstructure:"sound"`
	Log       LogConfig       `mapstructure:"log"`
}

type WindowConfig struct {
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Title      string `mapstructure:"title"`
	Background string `mapstructure:"background"`

	background colorful.Color
}

type ParticlesConfig struct {
	Max               int     `mapstructure:"max"`
	Batch             int     `mapstructure:"batch"`
	MinRadius         float64 `mapstructure:"min_radius"`
	MaxRadius         float64 `mapstructure:"max_radius"`
	RepulsionRadius   float64 `mapstructure:"repulsion_radius"`
	RepulsionStrength float64 `mapstructure:"repulsion_strength"`
	OpacityDecay      float64 `mapstructure:"opacity_decay"`
}

type TextConfig struct {
	Label      string  `mapstructure:"label"`
	Size       float64 `mapstructure:"size"`
	EaseFactor float64 `mapstructure:"ease_factor"`
	Dark       string  `mapstructure:"dark"`
	Light      string  `mapstructure:"light"`

	dark, light colorful.Color
}

type ScrollConfig struct {
	Threshold float64       `mapstructure:"threshold"`
	Debounce  time.Duration `mapstructure:"debounce"`
	Step      float64       `mapstructure:"step"`
	Max       float64       `mapstructure:"max"`
}

type SoundConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	SampleRate int           `mapstructure:"sample_rate"`
	Duration   time.Duration `mapstructure:"duration"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Color bool   `mapstructure:"color"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", WindowWidth)
	v.SetDefault("window.height", WindowHeight)
	v.SetDefault("window.title", "Particle Field - wheel to scroll, Esc/Q: Quit")
	v.SetDefault("window.background", Background)

	v.SetDefault("particles.max", MaxParticles)
	v.SetDefault("particles.batch", SpawnBatch)
	v.SetDefault("particles.min_radius", MinRadius)
	v.SetDefault("particles.max_radius", MaxRadius)
	v.SetDefault("particles.repulsion_radius", RepulsionRadius)
	v.SetDefault("particles.repulsion_strength", RepulsionStrength)
	v.SetDefault("particles.opacity_decay", OpacityDecay)

	v.SetDefault("text.label", Label)
	v.SetDefault("text.size", LabelSize)
	v.SetDefault("text.ease_factor", EaseFactor)
	v.SetDefault("text.dark", TextDark)
	v.SetDefault("text.light", TextLight)

	v.SetDefault("scroll.threshold", ScrollThreshold)
	v.SetDefault("scroll.debounce", ScrollDebounce)
	v.SetDefault("scroll.step", ScrollStep)
	v.SetDefault("scroll.max", MaxScroll)

	v.SetDefault("sound.enabled", false)
	v.SetDefault("sound.sample_rate", ChimeSampleRate)
	v.SetDefault("sound.duration", ChimeDuration)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.color", true)
}

// Default returns the built-in configuration, already validated.
func Default() *Config {
	cfg, err := decode(newViper())
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		// Defaults are constants; failing here is a programming error.
		panic(err)
	}
	return cfg
}

// Load reads particlefield.{yaml,toml,json} from dir on top of the defaults.
// A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName(FileName)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	p := c.Particles
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case p.Max <= 0:
		return fmt.Errorf("particles.max must be positive, got %d", p.Max)
	case p.Batch <= 0:
		return fmt.Errorf("particles.batch must be positive, got %d", p.Batch)
	case p.MinRadius <= 0 || p.MaxRadius < p.MinRadius:
		return fmt.Errorf("particle radius range [%g,%g) is invalid", p.MinRadius, p.MaxRadius)
	case p.RepulsionRadius < 0:
		return fmt.Errorf("particles.repulsion_radius must not be negative, got %g", p.RepulsionRadius)
	case p.OpacityDecay <= 0:
		return fmt.Errorf("particles.opacity_decay must be positive, got %g", p.OpacityDecay)
	case c.Text.EaseFactor <= 0 || c.Text.EaseFactor > 1:
		return fmt.Errorf("text.ease_factor must be in (0,1], got %g", c.Text.EaseFactor)
	case c.Scroll.Debounce < 0:
		return fmt.Errorf("scroll.debounce must not be negative, got %s", c.Scroll.Debounce)
	case c.Sound.SampleRate <= 0:
		return fmt.Errorf("sound.sample_rate must be positive, got %d", c.Sound.SampleRate)
	}
	for _, h := range []struct {
		key string
		hex string
		dst *colorful.Color
	}{
		{"text.dark", c.Text.Dark, &c.Text.dark},
		{"text.light", c.Text.Light, &c.Text.light},
		{"window.background", c.Window.Background, &c.Window.background},
	} {
		col, err := colorful.Hex(h.hex)
		if err != nil {
			return fmt.Errorf("%s: %w", h.key, err)
		}
		*h.dst = col
	}
	return nil
}

// Colors returns the dark and light label palettes parsed by Validate.
func (t TextConfig) Colors() (dark, light colorful.Color) {
	return t.dark, t.light
}

// BackgroundColor returns the window background parsed by Validate.
func (w WindowConfig) BackgroundColor() colorful.Color {
	return w.background
}
