package domain

import "time"

// RNG abstracts random number generation for deterministic testing.
// *math/rand/v2.Rand satisfies it.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// Range is the inclusive interval a number is drawn from.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Validate reports whether r can be drawn from.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return ErrInvalidRange
	}
	if r.Max-r.Min+1 <= 0 {
		return ErrRangeTooWide
	}
	return nil
}

// Screen is the state behind a single number display.
type Screen struct {
	ID    string
	Range Range
	// Result is nil until the first draw and is never cleared afterwards.
	Result       *int
	Draws        int
	DrawnAt      time.Time
	Presentation Presentation
}

// Placeholder is shown in place of the number before the first draw.
const Placeholder = "Tap to Generate"
