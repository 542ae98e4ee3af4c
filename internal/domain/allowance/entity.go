package allowance

import (
	"time"

	"github.com/shopspring/decimal"
)

// farFuture stands in for an open-ended window expiry.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// EligibilityWindow - dated range during which a rate applies to a citizen.
// Created by the request-approval workflow; read-only to this engine.
type EligibilityWindow struct {
	ID            string
	CitizenID     string
	EffectiveDate time.Time
	ExpiryDate    *time.Time
	RateAmount    decimal.Decimal
	RateID        string
	CreatedAt     time.Time
}

// ExpiresOn returns the window's expiry, or the far-future sentinel when open-ended.
func (w EligibilityWindow) ExpiresOn() time.Time {
	if w.ExpiryDate == nil {
		return farFuture
	}
	return *w.ExpiryDate
}

// WorkPeriod - a contiguous active-employment range within the target month.
// Derived on every calculation, never persisted.
type WorkPeriod struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive day count of the period.
func (p WorkPeriod) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// RetroDetail - one itemized retroactive correction (top-up or clawback)
// against a prior period's recorded amount.
type RetroDetail struct {
	Year   int
	Month  int
	Amount decimal.Decimal
	Remark string
}

// CalculationResult - the engine's output for one (citizen, month).
type CalculationResult struct {
	NetPayment    decimal.Decimal
	DeductionDays decimal.Decimal
	LicenseDays   int
	EligibleDays  decimal.Decimal
	Remark        string

	// Snapshot of the last rate applied during the month, kept for audit.
	RateID     string
	RateAmount decimal.Decimal

	RetroTotal   decimal.Decimal
	RetroDetails []RetroDetail
}

// TotalPayable returns net payment plus the retroactive total. May be
// negative; a negative total is interpreted downstream as a debt.
func (r CalculationResult) TotalPayable() decimal.Decimal {
	return r.NetPayment.Add(r.RetroTotal)
}

// PayoutItemType enum
type PayoutItemType string

const (
	PayoutItemCurrent     PayoutItemType = "CURRENT"
	PayoutItemRetroAdd    PayoutItemType = "RETROACTIVE_ADD"
	PayoutItemRetroDeduct PayoutItemType = "RETROACTIVE_DEDUCT"
)

// PayoutRecord - persisted result of one calculation-and-save cycle.
// Never overwritten; corrections show up as retroactive items on later payouts.
type PayoutRecord struct {
	ID               string
	CitizenID        string
	PeriodYear       int
	PeriodMonth      int
	RateID           string
	RateAmount       decimal.Decimal
	CalculatedAmount decimal.Decimal
	RetroAmount      decimal.Decimal
	TotalPayable     decimal.Decimal
	DeductionDays    decimal.Decimal
	EligibleDays     decimal.Decimal
	Remark           string
	CreatedAt        time.Time
}

// PayoutItem - one audit line of a payout record.
type PayoutItem struct {
	ID          string
	PayoutID    string
	RefYear     int
	RefMonth    int
	Type        PayoutItemType
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
