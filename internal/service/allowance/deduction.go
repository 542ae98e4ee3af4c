package allowance

import (
	"sort"
	"time"

	"github.com/nurihr/allowance-backend-go/internal/domain/leave"
	"github.com/nurihr/allowance-backend-go/internal/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var (
	one  = decimal.NewFromInt(1)
	half = decimal.New(5, -1)
)

// BuildDeductionMap walks the citizen's fiscal-year leave records in
// chronological order and returns a per-day deduction weight for days within
// [monthStart, monthEnd]. Weights are 0.5 (half-day) or 1, merged by max, so
// overlapping leave types never deduct more than one day per day.
//
// Cumulative leave types consume their quota (per-citizen quota row, or the
// rule default); only days from the quota-exceed date onward are marked.
// No-pay leaves skip quota logic and mark every day in range at full weight.
func BuildDeductionMap(
	records []leave.Record,
	quotas []leave.Quota,
	holidays []leave.Holiday,
	rules leave.RuleSet,
	monthStart, monthEnd time.Time,
) map[time.Time]decimal.Decimal {
	deductions := make(map[time.Time]decimal.Decimal)

	holidaySet := make(map[time.Time]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[dateutil.Normalize(h.Date)] = true
	}

	quotaByType := make(map[leave.Type]decimal.Decimal, len(quotas))
	for _, q := range quotas {
		quotaByType[q.Type] = q.Days
	}

	sorted := make([]leave.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	mark := func(day time.Time, weight decimal.Decimal) {
		if day.Before(monthStart) || day.After(monthEnd) {
			return
		}
		if current, ok := deductions[day]; !ok || weight.GreaterThan(current) {
			deductions[day] = weight
		}
	}

	usage := make(map[leave.Type]decimal.Decimal)
	for _, r := range sorted {
		start := dateutil.Normalize(r.StartDate)
		end := dateutil.Normalize(r.EndDate)

		if r.NoPay {
			for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
				mark(d, one)
			}
			continue
		}

		rule := rules.RuleFor(r.Type)
		if !rule.Cumulative {
			continue
		}

		quota := rule.DefaultQuota
		if q, ok := quotaByType[r.Type]; ok {
			quota = q
		}

		remaining := quota.Sub(usage[r.Type])
		usage[r.Type] = usage[r.Type].Add(r.DurationDays)
		if usage[r.Type].LessThanOrEqual(quota) {
			continue
		}

		weight := one
		exceed := start
		if !r.IsHalfDay() {
			// a half-day leave that overflows the quota is itself the
			// exceed point; full-day leaves locate it by counting unit
			exceed = exceedDate(start, end, rule, remaining, holidaySet)
		} else {
			weight = half
		}

		for d := exceed; !d.After(end); d = d.AddDate(0, 0, 1) {
			if rule.Unit == leave.CountBusinessDays && !isBusinessDay(d, holidaySet) {
				continue
			}
			mark(d, weight)
		}
	}

	return deductions
}

// exceedDate finds the first day within [start, end] at which cumulative
// usage crosses the quota, given the quota remainder before this leave.
func exceedDate(start, end time.Time, rule leave.Rule, remaining decimal.Decimal, holidaySet map[time.Time]bool) time.Time {
	if remaining.LessThanOrEqual(decimal.Zero) {
		return start
	}

	switch rule.Unit {
	case leave.CountBusinessDays:
		count := decimal.Zero
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !isBusinessDay(d, holidaySet) {
				continue
			}
			count = count.Add(one)
			if count.GreaterThanOrEqual(remaining) {
				return d.AddDate(0, 0, 1)
			}
		}
		return end.AddDate(0, 0, 1)

	default: // calendar days
		return start.AddDate(0, 0, int(remaining.Floor().IntPart()))
	}
}

func isBusinessDay(d time.Time, holidaySet map[time.Time]bool) bool {
	return !dateutil.IsWeekend(d) && !holidaySet[d]
}
