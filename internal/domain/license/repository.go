package license

import "context"

// Repository - interface for license_records table
type Repository interface {
	ListByCitizen(ctx context.Context, citizenID string) ([]Record, error)
}
