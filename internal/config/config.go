package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/randomtoy/quantum-roll/internal/domain"
)

// Prefix is prepended to every environment variable name.
const Prefix = "QUANTUM_ROLL_"

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`

	RangeMin int `env:"RANGE_MIN" envDefault:"1"`
	RangeMax int `env:"RANGE_MAX" envDefault:"100"`
	// RNGSeed makes draws reproducible when non-zero.
	RNGSeed uint64 `env:"RNG_SEED"`

	ViewportWidth   float64       `env:"VIEWPORT_WIDTH" envDefault:"390"`
	ViewportHeight  float64       `env:"VIEWPORT_HEIGHT" envDefault:"844"`
	ConfettiCount   int           `env:"CONFETTI_COUNT" envDefault:"15"`
	ConfettiFadeIn  time.Duration `env:"CONFETTI_FADE_IN" envDefault:"100ms"`
	ConfettiFadeOut time.Duration `env:"CONFETTI_FADE_OUT" envDefault:"1s"`

	ConfettiFadeInEasing  domain.Easing `env:"CONFETTI_FADE_IN_EASING" envDefault:"in_out_quad"`
	ConfettiFadeOutEasing domain.Easing `env:"CONFETTI_FADE_OUT_EASING" envDefault:"out_quad"`

	NumberSnap            time.Duration `env:"NUMBER_SNAP" envDefault:"100ms"`
	NumberFade            time.Duration `env:"NUMBER_FADE" envDefault:"500ms"`
	NumberSpringDamping   float64       `env:"NUMBER_SPRING_DAMPING" envDefault:"10"`
	NumberSpringStiffness float64       `env:"NUMBER_SPRING_STIFFNESS" envDefault:"100"`
	ButtonSquash          time.Duration `env:"BUTTON_SQUASH" envDefault:"100ms"`
	ButtonSpringDamping   float64       `env:"BUTTON_SPRING_DAMPING" envDefault:"10"`
	ButtonSpringStiffness float64       `env:"BUTTON_SPRING_STIFFNESS" envDefault:"200"`

	NumberSnapEasing   domain.Easing `env:"NUMBER_SNAP_EASING" envDefault:"in_out_quad"`
	NumberFadeEasing   domain.Easing `env:"NUMBER_FADE_EASING" envDefault:"out_exp"`
	ButtonSquashEasing domain.Easing `env:"BUTTON_SQUASH_EASING" envDefault:"in_out_quad"`
}

// MaxConfettiCount caps the particles generated per burst.
const MaxConfettiCount = 1000

var parsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(domain.Easing("")): func(v string) (any, error) {
		return domain.ParseEasing(v)
	},
}

// Load reads the configuration from QUANTUM_ROLL_* environment variables.
func Load() (Config, error) {
	return parse(env.Options{Prefix: Prefix, FuncMap: parsers})
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: Prefix, Environment: vars, FuncMap: parsers})
}

func parse(opts env.Options) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string
	if err := c.Range().Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("RANGE_MIN/RANGE_MAX [%d, %d]: %v", c.RangeMin, c.RangeMax, err))
	}
	if c.ConfettiCount < 0 || c.ConfettiCount > MaxConfettiCount {
		errs = append(errs, fmt.Sprintf("CONFETTI_COUNT must be 0-%d, got %d", MaxConfettiCount, c.ConfettiCount))
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		errs = append(errs, "VIEWPORT_WIDTH and VIEWPORT_HEIGHT must be positive")
	}
	for name, d := range map[string]time.Duration{
		"CONFETTI_FADE_IN":  c.ConfettiFadeIn,
		"CONFETTI_FADE_OUT": c.ConfettiFadeOut,
		"NUMBER_SNAP":       c.NumberSnap,
		"NUMBER_FADE":       c.NumberFade,
		"BUTTON_SQUASH":     c.ButtonSquash,
	} {
		if d < 0 {
			errs = append(errs, fmt.Sprintf("%s must not be negative", name))
		}
	}
	if c.NumberSpringStiffness <= 0 || c.ButtonSpringStiffness <= 0 {
		errs = append(errs, "spring stiffness must be positive")
	}
	if c.NumberSpringDamping < 0 || c.ButtonSpringDamping < 0 {
		errs = append(errs, "spring damping must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Range is the default range new screens draw from.
func (c Config) Range() domain.Range {
	return domain.Range{Min: c.RangeMin, Max: c.RangeMax}
}

// Timeline converts the animation settings.
func (c Config) Timeline() domain.TimelineConfig {
	return domain.TimelineConfig{
		NumberSnap:            c.NumberSnap,
		NumberSnapEasing:      c.NumberSnapEasing,
		NumberFade:            c.NumberFade,
		NumberFadeEasing:      c.NumberFadeEasing,
		NumberSpring:          domain.Spring{Damping: c.NumberSpringDamping, Stiffness: c.NumberSpringStiffness, Mass: 1},
		ButtonSquash:          c.ButtonSquash,
		ButtonSquashEasing:    c.ButtonSquashEasing,
		ButtonSpring:          domain.Spring{Damping: c.ButtonSpringDamping, Stiffness: c.ButtonSpringStiffness, Mass: 1},
		ConfettiCount:         c.ConfettiCount,
		ConfettiFadeIn:        c.ConfettiFadeIn,
		ConfettiFadeInEasing:  c.ConfettiFadeInEasing,
		ConfettiFadeOut:       c.ConfettiFadeOut,
		ConfettiFadeOutEasing: c.ConfettiFadeOutEasing,
		Viewport:              domain.Viewport{Width: c.ViewportWidth, Height: c.ViewportHeight},
	}
}
