package movement

import (
	"context"
	"time"
)

// Repository - interface for movement_events table
type Repository interface {
	// ListByCitizenUntil returns all events effective on or before the given
	// date, ordered by (effective_date, seq).
	ListByCitizenUntil(ctx context.Context, citizenID string, until time.Time) ([]Event, error)
}
