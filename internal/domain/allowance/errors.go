package allowance

import "errors"

var (
	ErrPayoutNotFound  = errors.New("payout record not found")
	ErrPayoutExists    = errors.New("payout record already exists for this period")
	ErrRateLinkMissing = errors.New("eligibility window has no rate linked")
	ErrInvalidPeriod   = errors.New("invalid calculation period")
)
