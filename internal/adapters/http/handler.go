package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/quantum-roll/internal/app"
	"github.com/randomtoy/quantum-roll/internal/domain"
)

type Handler struct {
	svc *app.RollService
}

func NewHandler(svc *app.RollService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)

	g := e.Group("/v1/screens")
	g.POST("", h.OpenScreen)
	g.GET("/:id", h.GetScreen)
	g.DELETE("/:id", h.CloseScreen)
	g.POST("/:id/generate", h.Generate)
	g.PUT("/:id/range", h.SetRange)
	g.GET("/:id/frame", h.Frame)
	g.GET("/:id/timeline", h.Timeline)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) OpenScreen(c echo.Context) error {
	v, err := h.svc.Open(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, toScreenResponse(v, requestID(c)))
}

func (h *Handler) GetScreen(c echo.Context) error {
	v, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toScreenResponse(v, requestID(c)))
}

func (h *Handler) CloseScreen(c echo.Context) error {
	if err := h.svc.Close(c.Request().Context(), c.Param("id")); err != nil {
		return mapError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Generate is the press of the generate button.
func (h *Handler) Generate(c echo.Context) error {
	v, err := h.svc.Generate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toScreenResponse(v, requestID(c)))
}

func (h *Handler) SetRange(c echo.Context) error {
	var req RangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "body must be a JSON object with integer min and max"})
	}
	if req.Min == nil || req.Max == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "min and max are required"})
	}

	v, err := h.svc.SetRange(c.Request().Context(), c.Param("id"), domain.Range{Min: *req.Min, Max: *req.Max})
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toScreenResponse(v, requestID(c)))
}

func (h *Handler) Frame(c echo.Context) error {
	var at time.Time
	if raw := c.QueryParam("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "at must be an RFC 3339 timestamp"})
		}
		at = parsed
	}

	f, err := h.svc.Frame(c.Request().Context(), c.Param("id"), at)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toFrameResponse(f))
}

func (h *Handler) Timeline(c echo.Context) error {
	plan, err := h.svc.Plan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, toTimelineResponse(plan))
}

func requestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}

func toScreenResponse(v app.ScreenView, requestID string) ScreenResponse {
	resp := ScreenResponse{
		ID:      v.ID,
		Range:   v.Range,
		Result:  v.Result,
		Display: v.Display,
		Draws:   v.Draws,
		Frame:   toFrameResponse(v.Frame),
		Meta:    MetaResp{RequestID: requestID},
	}
	if !v.DrawnAt.IsZero() {
		drawnAt := v.DrawnAt
		resp.DrawnAt = &drawnAt
	}
	return resp
}

func toFrameResponse(f domain.Frame) FrameResponse {
	particles := f.Confetti
	if particles == nil {
		particles = []domain.Particle{}
	}
	return FrameResponse{
		At: f.At,
		Number: ElementResp{
			Opacity: &f.NumberOpacity,
			Scale:   &f.NumberScale,
		},
		Button: ElementResp{Scale: &f.ButtonScale},
		Confetti: ConfettiResp{
			Opacity:   f.ConfettiOpacity,
			Size:      domain.ParticleSize,
			Particles: particles,
		},
	}
}

func toTimelineResponse(plan []domain.TrackPlan) TimelineResponse {
	tracks := make([]TrackResp, len(plan))
	for i, tp := range plan {
		tr := TrackResp{
			Name:     tp.Name,
			Active:   tp.Active,
			Segments: make([]SegmentResp, len(tp.Steps)),
		}
		if tp.Active {
			started := tp.Started
			tr.Started = &started
		}
		for j, s := range tp.Steps {
			seg := SegmentResp{
				Kind:       "timing",
				From:       s.From,
				Target:     s.Target,
				OffsetMS:   s.Offset.Milliseconds(),
				DurationMS: s.Duration.Milliseconds(),
				Easing:     s.Easing,
			}
			if s.Spring != nil {
				seg.Kind = "spring"
				seg.Easing = ""
				seg.Spring = s.Spring
			}
			tr.Segments[j] = seg
			tr.DurationMS = s.End().Milliseconds()
		}
		tracks[i] = tr
	}
	return TimelineResponse{Tracks: tracks}
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrScreenNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrRangeTooWide):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID(c), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
