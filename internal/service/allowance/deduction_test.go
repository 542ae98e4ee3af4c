package allowance

import (
	"testing"
	"time"

	"github.com/nurihr/allowance-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaveRecord(typ leave.Type, start, end time.Time, duration string, noPay bool) leave.Record {
	return leave.Record{
		Type:         typ,
		StartDate:    start,
		EndDate:      end,
		DurationDays: decimal.RequireFromString(duration),
		NoPay:        noPay,
	}
}

func quota(typ leave.Type, days int64) leave.Quota {
	return leave.Quota{Type: typ, Days: decimal.NewFromInt(days)}
}

func TestBuildDeductionMap_WithinQuota(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypeVacation, d(2024, time.May, 6), d(2024, time.May, 10), "5", false),
	}

	deductions := BuildDeductionMap(records, nil, nil, leave.DefaultRules(), mayStart, mayEnd)

	assert.Empty(t, deductions)
}

func TestBuildDeductionMap_NoPayMarksEveryDay(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypeVacation, d(2024, time.May, 8), d(2024, time.May, 10), "3", true),
	}

	deductions := BuildDeductionMap(records, nil, nil, leave.DefaultRules(), mayStart, mayEnd)

	require.Len(t, deductions, 3)
	for day := d(2024, time.May, 8); !day.After(d(2024, time.May, 10)); day = day.AddDate(0, 0, 1) {
		assert.True(t, deductions[day].Equal(one), "day %s", day.Format("2006-01-02"))
	}
}

func TestBuildDeductionMap_CalendarDayExceed(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypeSick, d(2024, time.May, 1), d(2024, time.May, 10), "10", false),
	}
	quotas := []leave.Quota{quota(leave.TypeSick, 5)}

	deductions := BuildDeductionMap(records, quotas, nil, leave.DefaultRules(), mayStart, mayEnd)

	// quota covers the 1st through the 5th; deduction starts on the 6th
	require.Len(t, deductions, 5)
	assert.NotContains(t, deductions, d(2024, time.May, 5))
	for day := d(2024, time.May, 6); !day.After(d(2024, time.May, 10)); day = day.AddDate(0, 0, 1) {
		assert.True(t, deductions[day].Equal(one), "day %s", day.Format("2006-01-02"))
	}
}

func TestBuildDeductionMap_BusinessDayExceed(t *testing.T) {
	t.Parallel()

	// Mon 2024-05-06 through Fri 2024-05-10
	records := []leave.Record{
		leaveRecord(leave.TypeVacation, d(2024, time.May, 6), d(2024, time.May, 10), "5", false),
	}
	quotas := []leave.Quota{quota(leave.TypeVacation, 3)}

	deductions := BuildDeductionMap(records, quotas, nil, leave.DefaultRules(), mayStart, mayEnd)

	require.Len(t, deductions, 2)
	assert.True(t, deductions[d(2024, time.May, 9)].Equal(one))
	assert.True(t, deductions[d(2024, time.May, 10)].Equal(one))
}

func TestBuildDeductionMap_HolidayShiftsExceedDate(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypeVacation, d(2024, time.May, 6), d(2024, time.May, 10), "5", false),
	}
	quotas := []leave.Quota{quota(leave.TypeVacation, 3)}
	holidays := []leave.Holiday{{Date: d(2024, time.May, 7)}}

	deductions := BuildDeductionMap(records, quotas, holidays, leave.DefaultRules(), mayStart, mayEnd)

	// the Tuesday holiday does not count toward the quota, so only the
	// Friday lands past it
	require.Len(t, deductions, 1)
	assert.True(t, deductions[d(2024, time.May, 10)].Equal(one))
}

func TestBuildDeductionMap_HalfDayOverflow(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypePersonal, d(2024, time.May, 2), d(2024, time.May, 2), "1", false),
		leaveRecord(leave.TypePersonal, d(2024, time.May, 9), d(2024, time.May, 9), "0.5", false),
	}
	quotas := []leave.Quota{quota(leave.TypePersonal, 1)}

	deductions := BuildDeductionMap(records, quotas, nil, leave.DefaultRules(), mayStart, mayEnd)

	require.Len(t, deductions, 1)
	assert.True(t, deductions[d(2024, time.May, 9)].Equal(half))
}

func TestBuildDeductionMap_OverlapMergedByMax(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypePersonal, d(2024, time.May, 2), d(2024, time.May, 2), "1", false),
		leaveRecord(leave.TypePersonal, d(2024, time.May, 9), d(2024, time.May, 9), "0.5", false),
		leaveRecord(leave.TypeSick, d(2024, time.May, 9), d(2024, time.May, 9), "1", true),
	}
	quotas := []leave.Quota{quota(leave.TypePersonal, 1)}

	deductions := BuildDeductionMap(records, quotas, nil, leave.DefaultRules(), mayStart, mayEnd)

	require.Len(t, deductions, 1)
	assert.True(t, deductions[d(2024, time.May, 9)].Equal(one), "full-day weight wins over half-day")
}

func TestBuildDeductionMap_PriorRecordsConsumeQuota(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypeVacation, d(2024, time.April, 1), d(2024, time.April, 2), "2", false),
		leaveRecord(leave.TypeVacation, d(2024, time.May, 6), d(2024, time.May, 7), "2", false),
	}
	quotas := []leave.Quota{quota(leave.TypeVacation, 2)}

	deductions := BuildDeductionMap(records, quotas, nil, leave.DefaultRules(), mayStart, mayEnd)

	require.Len(t, deductions, 2)
	assert.True(t, deductions[d(2024, time.May, 6)].Equal(one))
	assert.True(t, deductions[d(2024, time.May, 7)].Equal(one))
}

func TestBuildDeductionMap_NonCumulativeTypeNeverDeducts(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypeOther, d(2024, time.May, 1), d(2024, time.May, 20), "20", false),
	}
	quotas := []leave.Quota{quota(leave.TypeOther, 1)}

	deductions := BuildDeductionMap(records, quotas, nil, leave.DefaultRules(), mayStart, mayEnd)

	assert.Empty(t, deductions)
}

func TestBuildDeductionMap_ClampedToMonth(t *testing.T) {
	t.Parallel()

	records := []leave.Record{
		leaveRecord(leave.TypeSick, d(2024, time.April, 28), d(2024, time.May, 2), "5", false),
	}
	quotas := []leave.Quota{quota(leave.TypeSick, 0)}

	deductions := BuildDeductionMap(records, quotas, nil, leave.DefaultRules(), mayStart, mayEnd)

	require.Len(t, deductions, 2)
	assert.True(t, deductions[d(2024, time.May, 1)].Equal(one))
	assert.True(t, deductions[d(2024, time.May, 2)].Equal(one))
}
