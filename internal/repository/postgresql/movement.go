package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nurihr/allowance-backend-go/internal/domain/movement"
	"github.com/nurihr/allowance-backend-go/internal/pkg/database"
)

type movementRepository struct {
	db *database.DB
}

func NewMovementRepository(db *database.DB) movement.Repository {
	return &movementRepository{db: db}
}

func (r *movementRepository) ListByCitizenUntil(ctx context.Context, citizenID string, until time.Time) ([]movement.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, citizen_id, event_type, effective_date, seq, created_at
		FROM movement_events
		WHERE citizen_id = $1 AND effective_date <= $2
		ORDER BY effective_date, seq
	`

	rows, err := q.Query(ctx, query, citizenID, until)
	if err != nil {
		return nil, fmt.Errorf("failed to list movement events: %w", err)
	}
	defer rows.Close()

	var events []movement.Event
	for rows.Next() {
		var ev movement.Event
		if err := rows.Scan(
			&ev.ID, &ev.CitizenID, &ev.Type, &ev.EffectiveDate, &ev.Seq, &ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movement event: %w", err)
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}
