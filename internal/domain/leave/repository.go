package leave

import (
	"context"
	"time"
)

// RecordRepository - interface for leave_records table
type RecordRepository interface {
	// ListByCitizenAndYear returns the citizen's leaves for one fiscal
	// year, ordered by start date.
	ListByCitizenAndYear(ctx context.Context, citizenID string, fiscalYear int) ([]Record, error)
}

// QuotaRepository - interface for leave_quotas table
type QuotaRepository interface {
	ListByCitizenAndYear(ctx context.Context, citizenID string, fiscalYear int) ([]Quota, error)
}

// HolidayRepository - interface for holidays table
type HolidayRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
