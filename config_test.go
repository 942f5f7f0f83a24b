package willowui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultMaxInteractionDuration, cfg.MaxInteractionDuration)
	assert.Equal(t, OutExpo, cfg.Highlight.Easing)
	assert.NoError(t, cfg.validate())
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(`
max_interaction_duration = 1.5
capture_cursor_on_drag = true
debug = true
log_level = "debug"

[highlight]
duration = 0.2
easing = "in-out-sine"
`)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.MaxInteractionDuration)
	assert.True(t, cfg.CaptureCursorOnDrag)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, &TweenConfig{Duration: 0.2, Easing: InOutSine}, cfg.Highlight)
}

func TestDecodeConfigKeepsDefaults(t *testing.T) {
	cfg, err := DecodeConfig(`capture_cursor_on_drag = true`)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Highlight, cfg.Highlight)
	assert.Equal(t, DefaultMaxInteractionDuration, cfg.MaxInteractionDuration)
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":       `frobnicate = 1`,
		"unknown easing":    "[highlight]\neasing = \"wobble\"",
		"negative duration": "[highlight]\nduration = -1.0",
		"zero max duration": `max_interaction_duration = 0.0`,
		"bad log level":     `log_level = "loud"`,
		"bad syntax":        `max_interaction_duration = `,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeConfig(data)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "err = %v", err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.toml")
	require.NoError(t, os.WriteFile(path, []byte("[highlight]\nduration = 0.3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Highlight.Duration)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDecodeConfigPartialHighlight(t *testing.T) {
	cfg, err := DecodeConfig("[highlight]\nduration = 0.0\n")
	require.NoError(t, err)
	require.NotNil(t, cfg.Highlight)
	assert.Equal(t, 0.0, cfg.Highlight.Duration)
	assert.Equal(t, OutExpo, cfg.Highlight.Easing)
}

func TestInstantHighlightIsKept(t *testing.T) {
	cfg, err := DecodeConfig("[highlight]\nduration = 0.0\neasing = \"linear\"\n")
	require.NoError(t, err)

	ui := NewUI(cfg)
	anim := ui.highlightAnimation()
	require.True(t, anim.Valid)
	assert.Equal(t, 0.0, anim.Value.Tween.Duration)
	assert.Equal(t, Linear, anim.Value.Tween.Easing)
	assert.Equal(t, ProgressEnd, anim.Value.Progress(FluxPointerEnter, 0).Kind)
}

func TestHighlightAnimationFallsBack(t *testing.T) {
	ui := NewUI(Config{})
	anim := ui.highlightAnimation()
	require.True(t, anim.Valid)
	assert.Equal(t, DefaultConfig().Highlight.Duration, anim.Value.Tween.Duration)
	assert.Equal(t, DefaultMaxInteractionDuration, ui.Config().MaxInteractionDuration)
}
