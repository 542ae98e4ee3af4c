package license

import "time"

// Status enum - synced from the external license registry.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
	StatusRevoked Status = "REVOKED"
)

// Record - one license validity range for a citizen. The free-text name,
// type and occupation fields feed the lifetime-exemption keyword match.
type Record struct {
	ID         string
	CitizenID  string
	ValidFrom  time.Time
	ValidUntil time.Time
	Status     Status
	Name       string
	Type       string
	Occupation string
	CreatedAt  time.Time
}
