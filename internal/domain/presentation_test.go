package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/randomtoy/quantum-roll/internal/domain"
)

func TestGenerateBurst_WithinViewport_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 50).Draw(rt, "count")
		vp := domain.Viewport{
			Width:  rapid.Float64Range(1, 4000).Draw(rt, "width"),
			Height: rapid.Float64Range(1, 4000).Draw(rt, "height"),
		}
		burst := domain.GenerateBurst(count, vp, seeded(rapid.Uint64().Draw(rt, "seed")))

		require.Len(rt, burst, count)
		for _, p := range burst {
			assert.GreaterOrEqual(rt, p.X, 0.0)
			assert.Less(rt, p.X, vp.Width)
			assert.GreaterOrEqual(rt, p.Y, 0.0)
			assert.Less(rt, p.Y, vp.Height)
			assert.GreaterOrEqual(rt, p.Hue, 0.0)
			assert.Less(rt, p.Hue, 360.0)
			assert.GreaterOrEqual(rt, p.Scale, 0.5)
			assert.Less(rt, p.Scale, 1.0)
			assert.GreaterOrEqual(rt, p.OffsetX, -100.0)
			assert.Less(rt, p.OffsetX, 100.0)
			assert.Regexp(rt, `^#[0-9a-f]{6}$`, p.Color)
		}
	})
}

func TestGenerateBurst_Deterministic(t *testing.T) {
	rng := &sequenceRNG{ints: []int{0}, floats: []float64{0, 0.5, 0.25, 0.5, 0.5, 0}}
	burst := domain.GenerateBurst(1, domain.Viewport{Width: 100, Height: 200}, rng)

	require.Len(t, burst, 1)
	p := burst[0]
	assert.Equal(t, 0.0, p.Hue)
	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 50.0, p.Y)
	assert.Equal(t, 0.0, p.OffsetX)
	assert.Equal(t, 0.0, p.OffsetY)
	assert.Equal(t, 0.5, p.Scale)
	assert.Equal(t, "#e87d7d", p.Color)
}

func TestPresentation_IdleFrame(t *testing.T) {
	p := domain.NewPresentation(domain.DefaultTimelineConfig())
	f := p.Frame(t0)

	assert.Equal(t, 0.0, f.NumberOpacity.Value)
	assert.Equal(t, 0.5, f.NumberScale.Value)
	assert.Equal(t, 1.0, f.ButtonScale.Value)
	assert.Equal(t, 0.0, f.ConfettiOpacity.Value)
	assert.Equal(t, domain.PhaseIdle, f.NumberOpacity.Phase)
	assert.Empty(t, f.Confetti)
}

func TestPresentation_PressOnlyTouchesButton(t *testing.T) {
	p := domain.NewPresentation(domain.DefaultTimelineConfig())
	p.Press(t0)
	f := p.Frame(t0.Add(50 * time.Millisecond))

	assert.Equal(t, domain.PhaseTransitioning, f.ButtonScale.Phase)
	assert.Less(t, f.ButtonScale.Value, 1.0)
	assert.Equal(t, domain.PhaseIdle, f.NumberOpacity.Phase)
	assert.Equal(t, domain.PhaseIdle, f.NumberScale.Phase)
	assert.Equal(t, domain.PhaseIdle, f.ConfettiOpacity.Phase)
}

func TestPresentation_RevealPlaysNumberAndConfetti(t *testing.T) {
	cfg := domain.DefaultTimelineConfig()
	p := domain.NewPresentation(cfg)
	p.Reveal(t0, seeded(7))

	require.Len(t, p.Confetti, cfg.ConfettiCount)

	f := p.Frame(t0.Add(50 * time.Millisecond))
	assert.Equal(t, domain.PhaseIdle, f.ButtonScale.Phase)
	assert.Equal(t, domain.PhaseTransitioning, f.NumberOpacity.Phase)
	assert.Equal(t, domain.PhaseTransitioning, f.NumberScale.Phase)
	assert.Equal(t, domain.PhaseTransitioning, f.ConfettiOpacity.Phase)
	assert.Greater(t, f.ConfettiOpacity.Value, 0.0)

	f = p.Frame(t0.Add(100 * time.Millisecond))
	assert.InDelta(t, 1.0, f.ConfettiOpacity.Value, 1e-9, "fade-in completes at 100ms")

	f = p.Frame(t0.Add(10 * time.Second))
	assert.Equal(t, domain.PhaseSettled, f.NumberOpacity.Phase)
	assert.Equal(t, domain.PhaseSettled, f.NumberScale.Phase)
	assert.Equal(t, domain.PhaseSettled, f.ConfettiOpacity.Phase)
	assert.Equal(t, 1.0, f.NumberOpacity.Value)
	assert.Equal(t, 1.0, f.NumberScale.Value)
	assert.Equal(t, 0.0, f.ConfettiOpacity.Value)
}

func TestPresentation_RetriggerRestartsEveryTrack(t *testing.T) {
	p := domain.NewPresentation(domain.DefaultTimelineConfig())
	p.Press(t0)
	p.Reveal(t0, seeded(8))
	first := p.Confetti

	again := t0.Add(250 * time.Millisecond)
	p.Press(again)
	p.Reveal(again, seeded(9))

	for _, tr := range p.Tracks() {
		start, ok := tr.Started()
		require.True(t, ok, tr.Name)
		assert.Equal(t, again, start, tr.Name)
		assert.Equal(t, tr.Rest(), tr.Steps()[0].From, tr.Name)
	}
	assert.NotEqual(t, first, p.Confetti, "confetti is re-randomized on every reveal")
}

func TestPresentation_Plan(t *testing.T) {
	p := domain.NewPresentation(domain.DefaultTimelineConfig())

	plan := p.Plan()
	require.Len(t, plan, 4)
	for _, tp := range plan {
		assert.False(t, tp.Active, tp.Name)
		assert.Len(t, tp.Steps, 2, tp.Name)
	}

	p.Reveal(t0, seeded(10))
	plan = p.Plan()
	assert.Equal(t, domain.TrackNumberOpacity, plan[0].Name)
	assert.True(t, plan[0].Active)
	assert.Equal(t, t0, plan[0].Started)
	assert.False(t, plan[2].Active, "button is driven by presses only")
	_, started := p.ButtonScale.Started()
	assert.False(t, started, "planning must not start an idle track")
}

func TestPresentation_UsesConfiguredEasing(t *testing.T) {
	cfg := domain.DefaultTimelineConfig()
	cfg.NumberFadeEasing = domain.EaseLinear
	p := domain.NewPresentation(cfg)
	p.Reveal(t0, seeded(11))

	// Halfway through the 500ms fade that follows the 100ms snap.
	f := p.Frame(t0.Add(350 * time.Millisecond))
	assert.InDelta(t, 0.5, f.NumberOpacity.Value, 1e-9)
}
