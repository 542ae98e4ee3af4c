package allowance

import "context"

// Service - calculation engine surface consumed by the HTTP layer.
type Service interface {
	// CalculateMonthly computes the allowance for one (citizen, month),
	// including retroactive reconciliation of recently closed periods.
	// It performs no writes.
	CalculateMonthly(ctx context.Context, citizenID string, year, month int) (CalculationResult, error)

	// CalculateAndSave runs CalculateMonthly and persists the payout record
	// with its itemized breakdown atomically.
	CalculateAndSave(ctx context.Context, citizenID string, year, month int) (PayoutRecord, error)

	// GetPayout returns one persisted payout record with its line items.
	GetPayout(ctx context.Context, citizenID string, year, month int) (PayoutRecord, []PayoutItem, error)

	// ListPayouts returns persisted payout records for a citizen,
	// optionally filtered by period year.
	ListPayouts(ctx context.Context, citizenID string, year *int) ([]PayoutRecord, error)
}
