package willowui

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// TweenConfig is the animation used for hover highlights of built-in
// elements: resize handles, tabs and panel buttons.
type TweenConfig struct {
	Duration float64 `toml:"duration"`
	Easing   Ease    `toml:"easing"`
}

// Config holds the settings of a UI.
type Config struct {
	// MaxInteractionDuration is how long, in seconds, flux stopwatches run.
	MaxInteractionDuration float64 `toml:"max_interaction_duration"`
	// CaptureCursorOnDrag captures the mouse cursor while a drag is underway.
	CaptureCursorOnDrag bool `toml:"capture_cursor_on_drag"`
	// Highlight nil uses the default highlight tween. A zero duration makes
	// highlights instant.
	Highlight *TweenConfig `toml:"highlight"`
	Debug     bool         `toml:"debug"`
	// LogLevel is one of debug, info, warn or error. Empty keeps the logger's
	// level.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MaxInteractionDuration: DefaultMaxInteractionDuration,
		Highlight:              &TweenConfig{Duration: 0.1, Easing: OutExpo},
	}
}

// DecodeConfig parses TOML on top of DefaultConfig. Unknown keys are an
// error.
//
//	max_interaction_duration = 1.5
//	capture_cursor_on_drag = true
//
//	[highlight]
//	duration = 0.2
//	easing = "in-out-sine"
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("decode config: %w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := DecodeConfig(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxInteractionDuration <= 0 {
		return fmt.Errorf("%w: max_interaction_duration must be positive", ErrInvalidConfig)
	}
	if c.Highlight != nil && c.Highlight.Duration < 0 {
		return fmt.Errorf("%w: highlight duration must not be negative", ErrInvalidConfig)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

// level parses LogLevel. An empty level is slog.LevelInfo.
func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return l, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return l, nil
}

// highlightAnimation returns the hover animation for built-in elements.
func (ui *UI) highlightAnimation() Optional[AnimatedInteraction] {
	h := ui.cfg.Highlight
	if h == nil {
		h = DefaultConfig().Highlight
	}
	return Some(AnimatedInteraction{Tween: AnimationConfig{Duration: h.Duration, Easing: h.Easing}})
}
