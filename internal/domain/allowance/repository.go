package allowance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EligibilityRepository - interface for eligibility_windows table
type EligibilityRepository interface {
	// GetWindowsOverlapping returns windows touching [from, to],
	// ordered ascending by effective date.
	GetWindowsOverlapping(ctx context.Context, citizenID string, from, to time.Time) ([]EligibilityWindow, error)
}

// PayoutRepository - interface for allowance_payouts and allowance_payout_items.
// Save must be atomic per (citizen, period): the record and all its items are
// written in one transaction, serialized on the period key.
type PayoutRepository interface {
	Save(ctx context.Context, record PayoutRecord, items []PayoutItem) (PayoutRecord, error)
	GetByPeriod(ctx context.Context, citizenID string, year, month int) (PayoutRecord, error)

	// GetRecordedAmount returns the amount already settled for a closed
	// period: its recorded calculated amount plus any retroactive line
	// items on later payouts referencing it. ErrPayoutNotFound when the
	// period was never closed.
	GetRecordedAmount(ctx context.Context, citizenID string, year, month int) (decimal.Decimal, error)
	ListByCitizen(ctx context.Context, citizenID string, year *int) ([]PayoutRecord, error)
	GetItems(ctx context.Context, payoutID string) ([]PayoutItem, error)
}
