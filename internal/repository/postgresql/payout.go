package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nurihr/allowance-backend-go/internal/domain/allowance"
	"github.com/nurihr/allowance-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type payoutRepository struct {
	db *database.DB
}

func NewPayoutRepository(db *database.DB) allowance.PayoutRepository {
	return &payoutRepository{db: db}
}

// Save writes the payout record and all of its line items in one
// transaction. An advisory lock on the (citizen, period) key serializes
// concurrent saves so the read-diff-write cycle cannot interleave; a second
// save for the same key finds the existing row and returns ErrPayoutExists.
func (r *payoutRepository) Save(ctx context.Context, record allowance.PayoutRecord, items []allowance.PayoutItem) (allowance.PayoutRecord, error) {
	var saved allowance.PayoutRecord

	err := WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		periodKey := fmt.Sprintf("payout:%s:%04d-%02d", record.CitizenID, record.PeriodYear, record.PeriodMonth)
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, periodKey); err != nil {
			return fmt.Errorf("failed to lock payout period: %w", err)
		}

		var existingID string
		err := tx.QueryRow(ctx, `
			SELECT id FROM allowance_payouts
			WHERE citizen_id = $1 AND period_year = $2 AND period_month = $3
		`, record.CitizenID, record.PeriodYear, record.PeriodMonth).Scan(&existingID)
		if err == nil {
			return allowance.ErrPayoutExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check existing payout: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO allowance_payouts (
				id, citizen_id, period_year, period_month, rate_id, rate_amount,
				calculated_amount, retro_amount, total_payable,
				deduction_days, eligible_days, remark
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, citizen_id, period_year, period_month, rate_id, rate_amount,
				calculated_amount, retro_amount, total_payable,
				deduction_days, eligible_days, remark, created_at
		`,
			record.ID, record.CitizenID, record.PeriodYear, record.PeriodMonth,
			record.RateID, record.RateAmount, record.CalculatedAmount,
			record.RetroAmount, record.TotalPayable,
			record.DeductionDays, record.EligibleDays, record.Remark,
		).Scan(
			&saved.ID, &saved.CitizenID, &saved.PeriodYear, &saved.PeriodMonth,
			&saved.RateID, &saved.RateAmount, &saved.CalculatedAmount,
			&saved.RetroAmount, &saved.TotalPayable,
			&saved.DeductionDays, &saved.EligibleDays, &saved.Remark, &saved.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert payout record: %w", err)
		}

		for _, item := range items {
			if _, err := tx.Exec(ctx, `
				INSERT INTO allowance_payout_items (
					id, payout_id, ref_year, ref_month, item_type, amount, description
				) VALUES ($1, $2, $3, $4, $5, $6, $7)
			`,
				item.ID, saved.ID, item.RefYear, item.RefMonth,
				item.Type, item.Amount, item.Description,
			); err != nil {
				return fmt.Errorf("failed to insert payout item: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return allowance.PayoutRecord{}, err
	}

	return saved, nil
}

const payoutColumns = `
	id, citizen_id, period_year, period_month, rate_id, rate_amount,
	calculated_amount, retro_amount, total_payable,
	deduction_days, eligible_days, remark, created_at
`

func scanPayout(row pgx.Row) (allowance.PayoutRecord, error) {
	var p allowance.PayoutRecord
	err := row.Scan(
		&p.ID, &p.CitizenID, &p.PeriodYear, &p.PeriodMonth,
		&p.RateID, &p.RateAmount, &p.CalculatedAmount,
		&p.RetroAmount, &p.TotalPayable,
		&p.DeductionDays, &p.EligibleDays, &p.Remark, &p.CreatedAt,
	)
	return p, err
}

func (r *payoutRepository) GetByPeriod(ctx context.Context, citizenID string, year, month int) (allowance.PayoutRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payoutColumns + `
		FROM allowance_payouts
		WHERE citizen_id = $1 AND period_year = $2 AND period_month = $3
	`

	p, err := scanPayout(q.QueryRow(ctx, query, citizenID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return allowance.PayoutRecord{}, allowance.ErrPayoutNotFound
		}
		return allowance.PayoutRecord{}, fmt.Errorf("failed to get payout record: %w", err)
	}

	return p, nil
}

// GetRecordedAmount returns the amount already settled for a period: its
// payout's calculated amount plus every retroactive line item on later
// payouts that references the period. Counting settled corrections here is
// what keeps the reconciler from re-issuing them on the next run.
func (r *payoutRepository) GetRecordedAmount(ctx context.Context, citizenID string, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.calculated_amount + COALESCE((
			SELECT SUM(i.amount)
			FROM allowance_payout_items i
			JOIN allowance_payouts ip ON ip.id = i.payout_id
			WHERE ip.citizen_id = p.citizen_id
			  AND i.ref_year = p.period_year
			  AND i.ref_month = p.period_month
			  AND i.item_type <> 'CURRENT'
		), 0)
		FROM allowance_payouts p
		WHERE p.citizen_id = $1 AND p.period_year = $2 AND p.period_month = $3
	`

	var amount decimal.Decimal
	err := q.QueryRow(ctx, query, citizenID, year, month).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, allowance.ErrPayoutNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to get recorded amount: %w", err)
	}

	return amount, nil
}

func (r *payoutRepository) ListByCitizen(ctx context.Context, citizenID string, year *int) ([]allowance.PayoutRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payoutColumns + `
		FROM allowance_payouts
		WHERE citizen_id = $1
	`
	args := []interface{}{citizenID}
	if year != nil {
		query += " AND period_year = $2"
		args = append(args, *year)
	}
	query += " ORDER BY period_year DESC, period_month DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payout records: %w", err)
	}
	defer rows.Close()

	var records []allowance.PayoutRecord
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payout record: %w", err)
		}
		records = append(records, p)
	}

	return records, rows.Err()
}

func (r *payoutRepository) GetItems(ctx context.Context, payoutID string) ([]allowance.PayoutItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payout_id, ref_year, ref_month, item_type, amount, description, created_at
		FROM allowance_payout_items
		WHERE payout_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, payoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payout items: %w", err)
	}
	defer rows.Close()

	var items []allowance.PayoutItem
	for rows.Next() {
		var item allowance.PayoutItem
		if err := rows.Scan(
			&item.ID, &item.PayoutID, &item.RefYear, &item.RefMonth,
			&item.Type, &item.Amount, &item.Description, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payout item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
