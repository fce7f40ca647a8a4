package ports

import (
	"context"

	"github.com/randomtoy/quantum-roll/internal/domain"
)

// ScreenStore holds the live screens. Update applies fn atomically; if fn
// returns an error the stored screen is left untouched.
type ScreenStore interface {
	Create(ctx context.Context, s domain.Screen) error
	Get(ctx context.Context, id string) (domain.Screen, error)
	Update(ctx context.Context, id string, fn func(*domain.Screen) error) (domain.Screen, error)
	Delete(ctx context.Context, id string) error
}
