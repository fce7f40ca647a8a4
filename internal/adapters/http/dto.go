package http

import (
	"time"

	"github.com/randomtoy/quantum-roll/internal/domain"
)

// ScreenResponse is the JSON shape of a screen.
type ScreenResponse struct {
	ID      string        `json:"id"`
	Range   domain.Range  `json:"range"`
	Result  *int          `json:"result"`
	Display string        `json:"display"`
	Draws   int           `json:"draws"`
	DrawnAt *time.Time    `json:"drawn_at,omitempty"`
	Frame   FrameResponse `json:"frame"`
	Meta    MetaResp      `json:"meta"`
}

type FrameResponse struct {
	At       time.Time    `json:"at"`
	Number   ElementResp  `json:"number"`
	Button   ElementResp  `json:"button"`
	Confetti ConfettiResp `json:"confetti"`
}

type ElementResp struct {
	Opacity *domain.Value `json:"opacity,omitempty"`
	Scale   *domain.Value `json:"scale,omitempty"`
}

type ConfettiResp struct {
	Opacity   domain.Value      `json:"opacity"`
	Size      int               `json:"size"`
	Particles []domain.Particle `json:"particles"`
}

// TimelineResponse lists the segment sequence behind each animated value.
type TimelineResponse struct {
	Tracks []TrackResp `json:"tracks"`
}

type TrackResp struct {
	Name       string        `json:"name"`
	Active     bool          `json:"active"`
	Started    *time.Time    `json:"started,omitempty"`
	DurationMS int64         `json:"duration_ms"`
	Segments   []SegmentResp `json:"segments"`
}

type SegmentResp struct {
	Kind       string         `json:"kind"`
	From       float64        `json:"from"`
	Target     float64        `json:"target"`
	OffsetMS   int64          `json:"offset_ms"`
	DurationMS int64          `json:"duration_ms"`
	Easing     domain.Easing  `json:"easing,omitempty"`
	Spring     *domain.Spring `json:"spring,omitempty"`
}

// RangeRequest is the body of PUT /v1/screens/:id/range.
type RangeRequest struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
