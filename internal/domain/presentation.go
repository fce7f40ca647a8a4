package domain

import "time"

const (
	TrackNumberOpacity   = "number.opacity"
	TrackNumberScale     = "number.scale"
	TrackButtonScale     = "button.scale"
	TrackConfettiOpacity = "confetti.opacity"
)

// TimelineConfig holds every duration, easing and spring parameter of the
// presentation.
type TimelineConfig struct {
	NumberSnap            time.Duration
	NumberSnapEasing      Easing
	NumberFade            time.Duration
	NumberFadeEasing      Easing
	NumberSpring          Spring
	ButtonSquash          time.Duration
	ButtonSquashEasing    Easing
	ButtonSpring          Spring
	ConfettiCount         int
	ConfettiFadeIn        time.Duration
	ConfettiFadeInEasing  Easing
	ConfettiFadeOut       time.Duration
	ConfettiFadeOutEasing Easing
	Viewport              Viewport
}

// DefaultTimelineConfig matches the stock look of the app.
func DefaultTimelineConfig() TimelineConfig {
	return TimelineConfig{
		NumberSnap:            100 * time.Millisecond,
		NumberSnapEasing:      EaseInOutQuad,
		NumberFade:            500 * time.Millisecond,
		NumberFadeEasing:      EaseOutExp,
		NumberSpring:          Spring{Damping: 10, Stiffness: 100, Mass: 1},
		ButtonSquash:          100 * time.Millisecond,
		ButtonSquashEasing:    EaseInOutQuad,
		ButtonSpring:          Spring{Damping: 10, Stiffness: 200, Mass: 1},
		ConfettiCount:         15,
		ConfettiFadeIn:        100 * time.Millisecond,
		ConfettiFadeInEasing:  EaseInOutQuad,
		ConfettiFadeOut:       time.Second,
		ConfettiFadeOutEasing: EaseOutQuad,
		Viewport:              Viewport{Width: 390, Height: 844},
	}
}

// Presentation is the set of animated values on the screen. The number and
// confetti replay on every new result; the button replays on every press.
type Presentation struct {
	NumberOpacity   Track
	NumberScale     Track
	ButtonScale     Track
	ConfettiOpacity Track
	Confetti        []Particle

	count    int
	viewport Viewport
}

// NewPresentation builds an idle presentation.
func NewPresentation(cfg TimelineConfig) Presentation {
	return Presentation{
		NumberOpacity: NewTrack(TrackNumberOpacity, 0,
			Timing(0, cfg.NumberSnap, cfg.NumberSnapEasing),
			Timing(1, cfg.NumberFade, cfg.NumberFadeEasing),
		),
		NumberScale: NewTrack(TrackNumberScale, 0.5,
			Timing(0.8, cfg.NumberSnap, cfg.NumberSnapEasing),
			SpringTo(1, cfg.NumberSpring),
		),
		ButtonScale: NewTrack(TrackButtonScale, 1,
			Timing(0.9, cfg.ButtonSquash, cfg.ButtonSquashEasing),
			SpringTo(1, cfg.ButtonSpring),
		),
		ConfettiOpacity: NewTrack(TrackConfettiOpacity, 0,
			Timing(1, cfg.ConfettiFadeIn, cfg.ConfettiFadeInEasing),
			Timing(0, cfg.ConfettiFadeOut, cfg.ConfettiFadeOutEasing),
		),
		count:    cfg.ConfettiCount,
		viewport: cfg.Viewport,
	}
}

// Press plays the button squash. It does not depend on the draw outcome.
func (p *Presentation) Press(at time.Time) {
	p.ButtonScale.Restart(at)
}

// Reveal replays the number and confetti timelines for a freshly committed
// result and scatters a new burst.
func (p *Presentation) Reveal(at time.Time, rng RNG) {
	p.NumberOpacity.Restart(at)
	p.NumberScale.Restart(at)
	p.ConfettiOpacity.Restart(at)
	p.Confetti = GenerateBurst(p.count, p.viewport, rng)
}

// Value is a sampled animated value.
type Value struct {
	Value float64 `json:"value"`
	Phase Phase   `json:"phase"`
}

func sample(t *Track, at time.Time) Value {
	v, ph := t.Sample(at)
	return Value{Value: v, Phase: ph}
}

// Frame is everything the renderer binds to at one instant.
type Frame struct {
	At              time.Time  `json:"at"`
	NumberOpacity   Value      `json:"number_opacity"`
	NumberScale     Value      `json:"number_scale"`
	ButtonScale     Value      `json:"button_scale"`
	ConfettiOpacity Value      `json:"confetti_opacity"`
	Confetti        []Particle `json:"confetti"`
}

// Frame samples every track at the given instant.
func (p *Presentation) Frame(at time.Time) Frame {
	return Frame{
		At:              at,
		NumberOpacity:   sample(&p.NumberOpacity, at),
		NumberScale:     sample(&p.NumberScale, at),
		ButtonScale:     sample(&p.ButtonScale, at),
		ConfettiOpacity: sample(&p.ConfettiOpacity, at),
		Confetti:        p.Confetti,
	}
}

// Tracks lists the tracks in a stable order.
func (p *Presentation) Tracks() []*Track {
	return []*Track{&p.NumberOpacity, &p.NumberScale, &p.ButtonScale, &p.ConfettiOpacity}
}

// TrackPlan is the segment sequence a track is playing, or would play next
// while idle.
type TrackPlan struct {
	Name    string
	Started time.Time
	Active  bool
	Steps   []Step
}

// Plan describes every track's current run.
func (p *Presentation) Plan() []TrackPlan {
	tracks := p.Tracks()
	out := make([]TrackPlan, 0, len(tracks))
	for _, t := range tracks {
		tp := TrackPlan{Name: t.Name}
		if start, ok := t.Started(); ok {
			tp.Started, tp.Active = start, true
			tp.Steps = t.Steps()
		} else {
			preview := *t
			preview.Restart(time.Time{})
			tp.Steps = preview.Steps()
		}
		out = append(out, tp)
	}
	return out
}
