package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nurihr/allowance-backend-go/internal/domain/allowance"
	"github.com/nurihr/allowance-backend-go/internal/pkg/database"
)

type eligibilityRepository struct {
	db *database.DB
}

func NewEligibilityRepository(db *database.DB) allowance.EligibilityRepository {
	return &eligibilityRepository{db: db}
}

func (r *eligibilityRepository) GetWindowsOverlapping(ctx context.Context, citizenID string, from, to time.Time) ([]allowance.EligibilityWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, citizen_id, effective_date, expiry_date, rate_amount, rate_id, created_at
		FROM eligibility_windows
		WHERE citizen_id = $1
		  AND effective_date <= $3
		  AND (expiry_date IS NULL OR expiry_date >= $2)
		ORDER BY effective_date
	`

	rows, err := q.Query(ctx, query, citizenID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligibility windows: %w", err)
	}
	defer rows.Close()

	var windows []allowance.EligibilityWindow
	for rows.Next() {
		var w allowance.EligibilityWindow
		if err := rows.Scan(
			&w.ID, &w.CitizenID, &w.EffectiveDate, &w.ExpiryDate, &w.RateAmount, &w.RateID, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan eligibility window: %w", err)
		}
		windows = append(windows, w)
	}

	return windows, rows.Err()
}
