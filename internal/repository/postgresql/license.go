package postgresql

import (
	"context"
	"fmt"

	"github.com/nurihr/allowance-backend-go/internal/domain/license"
	"github.com/nurihr/allowance-backend-go/internal/pkg/database"
)

type licenseRepository struct {
	db *database.DB
}

func NewLicenseRepository(db *database.DB) license.Repository {
	return &licenseRepository{db: db}
}

func (r *licenseRepository) ListByCitizen(ctx context.Context, citizenID string) ([]license.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, citizen_id, valid_from, valid_until, status, name, license_type, occupation, created_at
		FROM license_records
		WHERE citizen_id = $1
		ORDER BY valid_from
	`

	rows, err := q.Query(ctx, query, citizenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list license records: %w", err)
	}
	defer rows.Close()

	var records []license.Record
	for rows.Next() {
		var rec license.Record
		if err := rows.Scan(
			&rec.ID, &rec.CitizenID, &rec.ValidFrom, &rec.ValidUntil,
			&rec.Status, &rec.Name, &rec.Type, &rec.Occupation, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan license record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
