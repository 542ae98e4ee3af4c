package leave

import "github.com/shopspring/decimal"

// CountUnit enum - how a leave type's days are counted against quota.
type CountUnit string

const (
	// CountCalendarDays counts every calendar day in the leave range.
	CountCalendarDays CountUnit = "calendar_days"
	// CountBusinessDays skips weekends and configured holidays.
	CountBusinessDays CountUnit = "business_days"
)

// Rule - deduction policy for one leave type.
type Rule struct {
	Type Type
	// Cumulative leave types track fiscal-year usage against the quota;
	// non-cumulative types never produce a quota deduction.
	Cumulative   bool
	Unit         CountUnit
	DefaultQuota decimal.Decimal
}

// RuleSet maps leave types to their deduction rules. Default quotas can be
// overridden from configuration, per-citizen quota rows override both.
type RuleSet map[Type]Rule

// DefaultRules returns the built-in rule table.
func DefaultRules() RuleSet {
	return RuleSet{
		TypeVacation: {Type: TypeVacation, Cumulative: true, Unit: CountBusinessDays, DefaultQuota: decimal.NewFromInt(15)},
		TypePersonal: {Type: TypePersonal, Cumulative: true, Unit: CountBusinessDays, DefaultQuota: decimal.NewFromInt(5)},
		TypeSick:     {Type: TypeSick, Cumulative: true, Unit: CountCalendarDays, DefaultQuota: decimal.NewFromInt(60)},
		TypeOther:    {Type: TypeOther, Cumulative: false, Unit: CountCalendarDays, DefaultQuota: decimal.Zero},
	}
}

// RuleFor returns the rule for a leave type, falling back to the
// non-cumulative "other" rule for unknown types.
func (rs RuleSet) RuleFor(t Type) Rule {
	if r, ok := rs[t]; ok {
		return r
	}
	return rs[TypeOther]
}
