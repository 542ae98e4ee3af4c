package allowance

import (
	"strings"
	"time"

	"github.com/nurihr/allowance-backend-go/internal/domain/license"
	"github.com/nurihr/allowance-backend-go/internal/pkg/dateutil"
	"golang.org/x/text/width"
)

// LicenseChecker answers whether a citizen holds a valid professional
// license on a given day. A position or license text matching one of the
// configured lifetime keywords exempts the citizen from range checking
// entirely.
type LicenseChecker struct {
	lifetime bool
	ranges   []licenseRange
}

type licenseRange struct {
	from  time.Time
	until time.Time
}

func NewLicenseChecker(records []license.Record, positionName string, lifetimeKeywords []string) *LicenseChecker {
	keywords := make([]string, 0, len(lifetimeKeywords))
	for _, kw := range lifetimeKeywords {
		if k := normalizeText(kw); k != "" {
			keywords = append(keywords, k)
		}
	}

	matches := func(text string) bool {
		if text == "" {
			return false
		}
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}

	if matches(normalizeText(positionName)) {
		return &LicenseChecker{lifetime: true}
	}

	c := &LicenseChecker{}
	for _, r := range records {
		if matches(normalizeText(r.Name + r.Type + r.Occupation)) {
			c.lifetime = true
			return c
		}
		if r.Status != license.StatusActive {
			continue
		}
		c.ranges = append(c.ranges, licenseRange{
			from:  dateutil.Normalize(r.ValidFrom),
			until: dateutil.Normalize(r.ValidUntil),
		})
	}
	return c
}

// ValidOn reports license validity on day (inclusive range check).
func (c *LicenseChecker) ValidOn(day time.Time) bool {
	if c.lifetime {
		return true
	}
	for _, r := range c.ranges {
		if !day.Before(r.from) && !day.After(r.until) {
			return true
		}
	}
	return false
}

// normalizeText folds full-width characters to their narrow forms, lowers
// the case and strips spaces so keyword matching survives registry quirks.
func normalizeText(s string) string {
	folded := width.Fold.String(s)
	folded = strings.ToLower(folded)
	return strings.ReplaceAll(folded, " ", "")
}
