package employee

import "time"

// Employee - profile fields the engine reads. The position name feeds the
// lifetime-license exemption match.
type Employee struct {
	ID           string
	CitizenID    string
	FullName     string
	PositionName string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
