package allowance

import (
	"testing"
	"time"

	"github.com/nurihr/allowance-backend-go/internal/domain/license"
	"github.com/stretchr/testify/assert"
)

var lifetimeKeywords = []string{"lifetime", "permanent"}

func TestLicenseChecker_LifetimeByPosition(t *testing.T) {
	t.Parallel()

	checker := NewLicenseChecker(nil, "Permanent Staff", lifetimeKeywords)

	assert.True(t, checker.ValidOn(d(1990, time.January, 1)))
	assert.True(t, checker.ValidOn(d(2050, time.December, 31)))
}

func TestLicenseChecker_LifetimeByFullWidthText(t *testing.T) {
	t.Parallel()

	records := []license.Record{{
		Name:   "ｐｅｒｍａｎｅｎｔ practice certificate",
		Status: license.StatusExpired,
	}}
	checker := NewLicenseChecker(records, "social worker", lifetimeKeywords)

	assert.True(t, checker.ValidOn(d(2024, time.May, 1)))
}

func TestLicenseChecker_LifetimeKeywordSplitBySpaces(t *testing.T) {
	t.Parallel()

	records := []license.Record{{
		Occupation: "Life Time practitioner",
		Status:     license.StatusRevoked,
	}}
	checker := NewLicenseChecker(records, "social worker", lifetimeKeywords)

	assert.True(t, checker.ValidOn(d(2024, time.May, 1)))
}

func TestLicenseChecker_ActiveRangeInclusive(t *testing.T) {
	t.Parallel()

	records := []license.Record{{
		Name:       "practice certificate",
		Status:     license.StatusActive,
		ValidFrom:  d(2024, time.May, 10),
		ValidUntil: d(2024, time.May, 20),
	}}
	checker := NewLicenseChecker(records, "social worker", lifetimeKeywords)

	assert.False(t, checker.ValidOn(d(2024, time.May, 9)))
	assert.True(t, checker.ValidOn(d(2024, time.May, 10)))
	assert.True(t, checker.ValidOn(d(2024, time.May, 20)))
	assert.False(t, checker.ValidOn(d(2024, time.May, 21)))
}

func TestLicenseChecker_InactiveStatusIgnored(t *testing.T) {
	t.Parallel()

	records := []license.Record{
		{
			Name:       "practice certificate",
			Status:     license.StatusRevoked,
			ValidFrom:  d(2024, time.January, 1),
			ValidUntil: d(2024, time.December, 31),
		},
		{
			Name:       "practice certificate",
			Status:     license.StatusExpired,
			ValidFrom:  d(2024, time.January, 1),
			ValidUntil: d(2024, time.December, 31),
		},
	}
	checker := NewLicenseChecker(records, "social worker", lifetimeKeywords)

	assert.False(t, checker.ValidOn(d(2024, time.May, 15)))
}

func TestLicenseChecker_MultipleRanges(t *testing.T) {
	t.Parallel()

	records := []license.Record{
		{
			Name:       "first certificate",
			Status:     license.StatusActive,
			ValidFrom:  d(2024, time.May, 1),
			ValidUntil: d(2024, time.May, 10),
		},
		{
			Name:       "renewal",
			Status:     license.StatusActive,
			ValidFrom:  d(2024, time.May, 20),
			ValidUntil: d(2024, time.May, 31),
		},
	}
	checker := NewLicenseChecker(records, "social worker", lifetimeKeywords)

	assert.True(t, checker.ValidOn(d(2024, time.May, 5)))
	assert.False(t, checker.ValidOn(d(2024, time.May, 15)))
	assert.True(t, checker.ValidOn(d(2024, time.May, 25)))
}

func TestLicenseChecker_NoRecords(t *testing.T) {
	t.Parallel()

	checker := NewLicenseChecker(nil, "social worker", lifetimeKeywords)

	assert.False(t, checker.ValidOn(d(2024, time.May, 1)))
}
