package domain

import (
	"fmt"
	"math"
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing string

const (
	EaseLinear    Easing = "linear"
	EaseInOutQuad Easing = "in_out_quad"
	EaseOutQuad   Easing = "out_quad"
	EaseOutExp    Easing = "out_exp"
)

// ParseEasing accepts the names used in configuration and the timeline API.
func ParseEasing(s string) (Easing, error) {
	switch e := Easing(s); e {
	case EaseLinear, EaseInOutQuad, EaseOutQuad, EaseOutExp:
		return e, nil
	case "":
		return EaseInOutQuad, nil
	default:
		return "", fmt.Errorf("unknown easing %q", s)
	}
}

// Apply evaluates the curve at t. Input is clamped to [0, 1].
func (e Easing) Apply(t float64) float64 {
	t = clamp01(t)
	switch e {
	case EaseLinear:
		return t
	case EaseOutQuad:
		return 1 - (1-t)*(1-t)
	case EaseOutExp:
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	default:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	}
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
