package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/randomtoy/quantum-roll/internal/domain"
	"github.com/randomtoy/quantum-roll/internal/ports"
)

// ScreenView is the application-level output (no HTTP types).
type ScreenView struct {
	ID      string
	Range   domain.Range
	Result  *int
	Display string
	Draws   int
	DrawnAt time.Time
	Frame   domain.Frame
}

// RollService owns the screens: it draws numbers and drives their animations.
type RollService struct {
	store    ports.ScreenStore
	rng      domain.RNG
	clock    ports.Clock
	defaults domain.Range
	timeline domain.TimelineConfig
	logger   *slog.Logger
}

func NewRollService(store ports.ScreenStore, rng domain.RNG, clock ports.Clock, defaults domain.Range, timeline domain.TimelineConfig, logger *slog.Logger) *RollService {
	return &RollService{
		store:    store,
		rng:      rng,
		clock:    clock,
		defaults: defaults,
		timeline: timeline,
		logger:   logger,
	}
}

// Open creates a screen with the default range and no result.
func (s *RollService) Open(ctx context.Context) (ScreenView, error) {
	scr := domain.Screen{
		ID:           uuid.NewString(),
		Range:        s.defaults,
		Presentation: domain.NewPresentation(s.timeline),
	}
	if err := s.store.Create(ctx, scr); err != nil {
		return ScreenView{}, fmt.Errorf("create screen: %w", err)
	}
	return s.view(scr, s.clock.Now()), nil
}

func (s *RollService) Get(ctx context.Context, id string) (ScreenView, error) {
	scr, err := s.store.Get(ctx, id)
	if err != nil {
		return ScreenView{}, fmt.Errorf("get screen: %w", err)
	}
	return s.view(scr, s.clock.Now()), nil
}

func (s *RollService) Close(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete screen: %w", err)
	}
	return nil
}

// Generate handles a press of the generate button. An invalid range rejects
// the press before anything changes. Otherwise the button squashes, the new
// result is committed, and only then do the number and confetti replay.
func (s *RollService) Generate(ctx context.Context, id string) (ScreenView, error) {
	now := s.clock.Now()
	scr, err := s.store.Update(ctx, id, func(scr *domain.Screen) error {
		if err := scr.Range.Validate(); err != nil {
			return err
		}
		scr.Presentation.Press(now)

		v, err := domain.Draw(scr.Range, s.rng)
		if err != nil {
			return err
		}
		scr.Result = &v
		scr.Draws++
		scr.DrawnAt = now

		scr.Presentation.Reveal(now, s.rng)
		return nil
	})
	if err != nil {
		return ScreenView{}, fmt.Errorf("generate: %w", err)
	}

	s.logger.Debug("number drawn",
		"screen_id", id,
		"min", scr.Range.Min,
		"max", scr.Range.Max,
		"value", *scr.Result,
		"draws", scr.Draws,
	)
	return s.view(scr, now), nil
}

// SetRange replaces the bounds used by subsequent draws. The current result
// is kept.
func (s *RollService) SetRange(ctx context.Context, id string, r domain.Range) (ScreenView, error) {
	if err := r.Validate(); err != nil {
		return ScreenView{}, fmt.Errorf("set range: %w", err)
	}
	scr, err := s.store.Update(ctx, id, func(scr *domain.Screen) error {
		scr.Range = r
		return nil
	})
	if err != nil {
		return ScreenView{}, fmt.Errorf("set range: %w", err)
	}
	return s.view(scr, s.clock.Now()), nil
}

// Frame samples the screen's animated values. A zero instant means now.
func (s *RollService) Frame(ctx context.Context, id string, at time.Time) (domain.Frame, error) {
	scr, err := s.store.Get(ctx, id)
	if err != nil {
		return domain.Frame{}, fmt.Errorf("frame: %w", err)
	}
	if at.IsZero() {
		at = s.clock.Now()
	}
	return scr.Presentation.Frame(at), nil
}

// Plan returns the segment sequence behind every animated value.
func (s *RollService) Plan(ctx context.Context, id string) ([]domain.TrackPlan, error) {
	scr, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	return scr.Presentation.Plan(), nil
}

func (s *RollService) view(scr domain.Screen, at time.Time) ScreenView {
	return ScreenView{
		ID:      scr.ID,
		Range:   scr.Range,
		Result:  scr.Result,
		Display: display(scr.Result),
		Draws:   scr.Draws,
		DrawnAt: scr.DrawnAt,
		Frame:   scr.Presentation.Frame(at),
	}
}

func display(result *int) string {
	if result == nil {
		return domain.Placeholder
	}
	return strconv.Itoa(*result)
}
