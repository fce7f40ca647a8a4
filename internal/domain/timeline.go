package domain

import "time"

// Phase is where an animated value is within its timeline.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseTransitioning Phase = "transitioning"
	PhaseSettled       Phase = "settled"
)

// Segment moves a value to Target either over a fixed Duration with an Easing
// curve, or, when Spring is set, by spring physics until it comes to rest.
type Segment struct {
	Target   float64
	Duration time.Duration
	Easing   Easing
	Spring   *Spring
}

// Timing builds a fixed-duration segment.
func Timing(target float64, d time.Duration, e Easing) Segment {
	return Segment{Target: target, Duration: d, Easing: e}
}

// SpringTo builds a spring segment.
func SpringTo(target float64, s Spring) Segment {
	return Segment{Target: target, Spring: &s}
}

// Step is a segment resolved against its starting value and position in the
// sequence.
type Step struct {
	Segment
	From   float64
	Offset time.Duration
}

// End is the offset at which the step completes.
func (s Step) End() time.Duration {
	return s.Offset + s.Duration
}

func (s Step) valueAt(elapsed time.Duration) float64 {
	if s.Spring != nil {
		x, _ := s.Spring.Offset(s.From-s.Target, elapsed)
		return s.Target + x
	}
	if s.Duration <= 0 {
		return s.Target
	}
	p := s.Easing.Apply(float64(elapsed) / float64(s.Duration))
	return s.From + (s.Target-s.From)*p
}

// Track is a single animated value driven by a fixed sequence of segments.
// Restart discards any in-flight progress and replays the sequence from its
// resting value.
type Track struct {
	Name     string
	Initial  float64
	Segments []Segment

	started bool
	start   time.Time
	steps   []Step
}

// NewTrack returns an idle track resting at initial.
func NewTrack(name string, initial float64, segments ...Segment) Track {
	return Track{Name: name, Initial: initial, Segments: segments}
}

// Rest is the value the track sits at when nothing is playing.
func (t *Track) Rest() float64 {
	if !t.started || len(t.Segments) == 0 {
		return t.Initial
	}
	return t.Segments[len(t.Segments)-1].Target
}

// Restart begins the sequence at the given instant.
func (t *Track) Restart(at time.Time) {
	from := t.Rest()
	steps := make([]Step, 0, len(t.Segments))
	var offset time.Duration
	for _, seg := range t.Segments {
		if seg.Spring != nil {
			seg.Duration = seg.Spring.SettleTime(from - seg.Target)
		}
		step := Step{Segment: seg, From: from, Offset: offset}
		steps = append(steps, step)
		offset = step.End()
		from = seg.Target
	}
	t.started = true
	t.start = at
	t.steps = steps
}

// Steps returns the resolved sequence of the current run, nil while idle.
func (t *Track) Steps() []Step {
	return t.steps
}

// Started reports when the current run began.
func (t *Track) Started() (time.Time, bool) {
	return t.start, t.started
}

// Duration is the total length of the current run.
func (t *Track) Duration() time.Duration {
	if len(t.steps) == 0 {
		return 0
	}
	return t.steps[len(t.steps)-1].End()
}

// Sample evaluates the track at the given instant. Instants before the run
// started read as the first step's starting value.
func (t *Track) Sample(at time.Time) (float64, Phase) {
	if !t.started {
		return t.Initial, PhaseIdle
	}
	if len(t.steps) == 0 {
		return t.Rest(), PhaseSettled
	}
	elapsed := at.Sub(t.start)
	if elapsed < 0 {
		return t.steps[0].From, PhaseTransitioning
	}
	for _, s := range t.steps {
		if elapsed < s.End() {
			return s.valueAt(elapsed - s.Offset), PhaseTransitioning
		}
	}
	return t.Rest(), PhaseSettled
}
