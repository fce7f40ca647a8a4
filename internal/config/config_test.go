package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/quantum-roll/internal/config"
	"github.com/randomtoy/quantum-roll/internal/domain"
)

func TestLoadFrom_Defaults(t *testing.T) {
	c, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, slog.LevelInfo, c.LogLevel)
	assert.Equal(t, domain.Range{Min: 1, Max: 100}, c.Range())
	assert.Equal(t, uint64(0), c.RNGSeed)
	assert.Equal(t, domain.DefaultTimelineConfig(), c.Timeline())
}

func TestLoadFrom_Overrides(t *testing.T) {
	c, err := config.LoadFrom(map[string]string{
		"QUANTUM_ROLL_HTTP_ADDR":         ":9090",
		"QUANTUM_ROLL_LOG_LEVEL":         "debug",
		"QUANTUM_ROLL_RANGE_MIN":         "-10",
		"QUANTUM_ROLL_RANGE_MAX":         "10",
		"QUANTUM_ROLL_RNG_SEED":          "42",
		"QUANTUM_ROLL_CONFETTI_COUNT":    "30",
		"QUANTUM_ROLL_CONFETTI_FADE_OUT": "2s",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, slog.LevelDebug, c.LogLevel)
	assert.Equal(t, domain.Range{Min: -10, Max: 10}, c.Range())
	assert.Equal(t, uint64(42), c.RNGSeed)
	assert.Equal(t, 30, c.Timeline().ConfettiCount)
	assert.Equal(t, 2*time.Second, c.Timeline().ConfettiFadeOut)
}

func TestLoadFrom_InvalidRange(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{
		"QUANTUM_ROLL_RANGE_MIN": "10",
		"QUANTUM_ROLL_RANGE_MAX": "1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RANGE_MIN/RANGE_MAX")
}

func TestLoadFrom_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"log level":      {"QUANTUM_ROLL_LOG_LEVEL": "chatty"},
		"duration":       {"QUANTUM_ROLL_NUMBER_FADE": "soon"},
		"negative fade":  {"QUANTUM_ROLL_CONFETTI_FADE_IN": "-1s"},
		"confetti count": {"QUANTUM_ROLL_CONFETTI_COUNT": "-1"},
		"stiffness":      {"QUANTUM_ROLL_BUTTON_SPRING_STIFFNESS": "0"},
		"viewport":       {"QUANTUM_ROLL_VIEWPORT_WIDTH": "0"},
		"easing":         {"QUANTUM_ROLL_NUMBER_FADE_EASING": "bounce"},
		"confetti cap":   {"QUANTUM_ROLL_CONFETTI_COUNT": "1001"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFrom(vars)
			assert.Error(t, err)
		})
	}
}

func TestLoadFrom_EasingOverrides(t *testing.T) {
	c, err := config.LoadFrom(map[string]string{
		"QUANTUM_ROLL_NUMBER_FADE_EASING":       "linear",
		"QUANTUM_ROLL_CONFETTI_FADE_OUT_EASING": "out_exp",
	})
	require.NoError(t, err)

	tl := c.Timeline()
	assert.Equal(t, domain.EaseLinear, tl.NumberFadeEasing)
	assert.Equal(t, domain.EaseOutExp, tl.ConfettiFadeOutEasing)
	assert.Equal(t, domain.EaseInOutQuad, tl.NumberSnapEasing)
	assert.Equal(t, domain.EaseInOutQuad, tl.ButtonSquashEasing)
	assert.Equal(t, domain.EaseInOutQuad, tl.ConfettiFadeInEasing)

	p := domain.NewPresentation(tl)
	assert.Equal(t, domain.EaseLinear, p.NumberOpacity.Segments[1].Easing)
	assert.Equal(t, domain.EaseOutExp, p.ConfettiOpacity.Segments[1].Easing)
}

func TestLoadFrom_ConfettiCountAtCap(t *testing.T) {
	c, err := config.LoadFrom(map[string]string{"QUANTUM_ROLL_CONFETTI_COUNT": "1000"})
	require.NoError(t, err)
	assert.Equal(t, config.MaxConfettiCount, c.ConfettiCount)
}
