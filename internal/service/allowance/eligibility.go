package allowance

import (
	"sort"
	"time"

	domain "github.com/nurihr/allowance-backend-go/internal/domain/allowance"
	"github.com/shopspring/decimal"
)

// RateCursor resolves the active rate for a monotonically increasing stream
// of days with a single forward scan over the citizen's eligibility windows.
// State is private to one calculation; never share a cursor between citizens
// or feed it days out of order.
type RateCursor struct {
	windows []domain.EligibilityWindow
	next    int
	current *domain.EligibilityWindow
}

func NewRateCursor(windows []domain.EligibilityWindow) *RateCursor {
	sorted := make([]domain.EligibilityWindow, len(windows))
	copy(sorted, windows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate.Before(sorted[j].EffectiveDate)
	})
	return &RateCursor{windows: sorted}
}

// RateOn returns the rate and rate ID applying on day, or (0, "", false)
// when no window covers it. The most recently effective window wins; a day
// past that window's expiry has no active rate even if an older window
// would still cover it.
func (c *RateCursor) RateOn(day time.Time) (decimal.Decimal, string, bool) {
	for c.next < len(c.windows) && !c.windows[c.next].EffectiveDate.After(day) {
		c.current = &c.windows[c.next]
		c.next++
	}
	if c.current == nil || day.After(c.current.ExpiresOn()) {
		return decimal.Zero, "", false
	}
	return c.current.RateAmount, c.current.RateID, true
}
