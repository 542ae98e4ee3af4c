package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum
type Type string

const (
	TypeVacation Type = "vacation"
	TypePersonal Type = "personal"
	TypeSick     Type = "sick"
	TypeOther    Type = "other"
)

// Record - one recorded leave for a citizen, immutable once written.
// DurationDays below 1 signals a half-day leave. NoPay leaves bypass
// quota logic entirely.
type Record struct {
	ID           string
	CitizenID    string
	Type         Type
	StartDate    time.Time
	EndDate      time.Time
	DurationDays decimal.Decimal
	FiscalYear   int
	NoPay        bool
	CreatedAt    time.Time
}

// IsHalfDay reports whether the record consumes half a day.
func (r Record) IsHalfDay() bool {
	return r.DurationDays.LessThan(decimal.NewFromInt(1))
}

// Quota - per-type yearly limit for one citizen. Overrides the rule
// default when present.
type Quota struct {
	ID         string
	CitizenID  string
	FiscalYear int
	Type       Type
	Days       decimal.Decimal
	CreatedAt  time.Time
}

// Holiday - a non-business day excluded from business-day-counted rules.
type Holiday struct {
	Date time.Time
	Name string
}
