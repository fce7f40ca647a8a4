package domain

import colorful "github.com/lucasb-eyer/go-colorful"

const (
	confettiSaturation = 0.7
	confettiLightness  = 0.7
	confettiSpread     = 200.0
	// ParticleSize is the diameter of a confetti dot in pixels.
	ParticleSize = 8
)

// Viewport is the drawable area confetti is scattered over.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Particle is one confetti dot. Particles are not persistent; every burst
// replaces the whole set.
type Particle struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Hue     float64 `json:"hue"`
	Color   string  `json:"color"`
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`
	Scale   float64 `json:"scale"`
}

// GenerateBurst scatters count particles uniformly over vp with uniformly
// random hues at fixed saturation and lightness.
func GenerateBurst(count int, vp Viewport, rng RNG) []Particle {
	if count <= 0 {
		return nil
	}
	out := make([]Particle, count)
	for i := range out {
		hue := rng.Float64() * 360
		out[i] = Particle{
			X:       rng.Float64() * vp.Width,
			Y:       rng.Float64() * vp.Height,
			Hue:     hue,
			Color:   colorful.Hsl(hue, confettiSaturation, confettiLightness).Hex(),
			OffsetX: (rng.Float64() - 0.5) * confettiSpread,
			OffsetY: (rng.Float64() - 0.5) * confettiSpread,
			Scale:   rng.Float64()*0.5 + 0.5,
		}
	}
	return out
}
