package domain

import (
	"math"
	"time"
)

const (
	restDisplacement = 0.01
	restSpeed        = 2.0
	maxSettle        = 10 * time.Second
	settleStep       = time.Millisecond
)

// Spring describes a damped harmonic oscillator pulling a value to its target.
// The value starts at rest.
type Spring struct {
	Damping   float64 `json:"damping"`
	Stiffness float64 `json:"stiffness"`
	Mass      float64 `json:"mass"`
}

func (s Spring) mass() float64 {
	if s.Mass <= 0 {
		return 1
	}
	return s.Mass
}

// params returns the natural frequency and damping ratio.
func (s Spring) params() (w0, zeta float64) {
	m := s.mass()
	return math.Sqrt(s.Stiffness / m), s.Damping / (2 * math.Sqrt(s.Stiffness*m))
}

// Offset returns the displacement from the target and the velocity at t,
// given an initial displacement d0.
func (s Spring) Offset(d0 float64, t time.Duration) (x, v float64) {
	if d0 == 0 || s.Stiffness <= 0 {
		return 0, 0
	}
	sec := t.Seconds()
	w0, zeta := s.params()

	switch {
	case zeta < 1:
		a := zeta * w0
		wd := w0 * math.Sqrt(1-zeta*zeta)
		b := a * d0 / wd
		e := math.Exp(-a * sec)
		cos, sin := math.Cos(wd*sec), math.Sin(wd*sec)
		x = e * (d0*cos + b*sin)
		v = e * (-a*(d0*cos+b*sin) + wd*(b*cos-d0*sin))
	case zeta == 1:
		e := math.Exp(-w0 * sec)
		x = e * d0 * (1 + w0*sec)
		v = -w0 * w0 * d0 * sec * e
	default:
		c1, c2, r1, r2 := overdamped(d0, w0, zeta)
		e1, e2 := math.Exp(r1*sec), math.Exp(r2*sec)
		x = c1*e1 + c2*e2
		v = r1*c1*e1 + r2*c2*e2
	}
	return x, v
}

func overdamped(d0, w0, zeta float64) (c1, c2, r1, r2 float64) {
	root := w0 * math.Sqrt(zeta*zeta-1)
	r1, r2 = -zeta*w0+root, -zeta*w0-root
	return d0 * r2 / (r2 - r1), d0 * r1 / (r1 - r2), r1, r2
}

// envelope bounds |x| and |v| from t onwards. Both bounds never increase
// with t.
func (s Spring) envelope(d0 float64, t time.Duration) (xMax, vMax float64) {
	sec := t.Seconds()
	w0, zeta := s.params()

	switch {
	case zeta < 1:
		a := zeta * w0
		wd := w0 * math.Sqrt(1-zeta*zeta)
		b := a * d0 / wd
		e := math.Exp(-a * sec)
		return e * math.Hypot(d0, b), e * math.Hypot(wd*b-a*d0, a*b+wd*d0)
	case zeta == 1:
		// |v| peaks at t = 1/w0 and only decays after that.
		if sec < 1/w0 {
			return math.Inf(1), math.Inf(1)
		}
		e := math.Exp(-w0 * sec)
		return math.Abs(d0) * (1 + w0*sec) * e, w0 * w0 * math.Abs(d0) * sec * e
	default:
		c1, c2, r1, r2 := overdamped(d0, w0, zeta)
		e1, e2 := math.Exp(r1*sec), math.Exp(r2*sec)
		return math.Abs(c1)*e1 + math.Abs(c2)*e2, math.Abs(r1*c1)*e1 + math.Abs(r2*c2)*e2
	}
}

// SettleTime is the earliest instant after which the spring stays within the
// rest thresholds, capped at ten seconds.
func (s Spring) SettleTime(d0 float64) time.Duration {
	if d0 == 0 || s.Stiffness <= 0 {
		return 0
	}
	var last time.Duration
	moving := false
	for t := time.Duration(0); t <= maxSettle; t += settleStep {
		if xMax, vMax := s.envelope(d0, t); xMax < restDisplacement && vMax < restSpeed {
			break
		}
		x, v := s.Offset(d0, t)
		if math.Abs(x) >= restDisplacement || math.Abs(v) >= restSpeed {
			last = t
			moving = true
		}
	}
	if !moving {
		return 0
	}
	return min(last+settleStep, maxSettle)
}
