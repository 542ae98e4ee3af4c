package employee

import "context"

// Repository - interface for employees table
type Repository interface {
	GetByCitizenID(ctx context.Context, citizenID string) (Employee, error)
}
