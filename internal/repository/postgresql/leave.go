package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nurihr/allowance-backend-go/internal/domain/leave"
	"github.com/nurihr/allowance-backend-go/internal/pkg/database"
)

type leaveRecordRepository struct {
	db *database.DB
}

func NewLeaveRecordRepository(db *database.DB) leave.RecordRepository {
	return &leaveRecordRepository{db: db}
}

func (r *leaveRecordRepository) ListByCitizenAndYear(ctx context.Context, citizenID string, fiscalYear int) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, citizen_id, leave_type, start_date, end_date, duration_days, fiscal_year, no_pay, created_at
		FROM leave_records
		WHERE citizen_id = $1 AND fiscal_year = $2
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, citizenID, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		if err := rows.Scan(
			&rec.ID, &rec.CitizenID, &rec.Type, &rec.StartDate, &rec.EndDate,
			&rec.DurationDays, &rec.FiscalYear, &rec.NoPay, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

type leaveQuotaRepository struct {
	db *database.DB
}

func NewLeaveQuotaRepository(db *database.DB) leave.QuotaRepository {
	return &leaveQuotaRepository{db: db}
}

func (r *leaveQuotaRepository) ListByCitizenAndYear(ctx context.Context, citizenID string, fiscalYear int) ([]leave.Quota, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, citizen_id, fiscal_year, leave_type, quota_days, created_at
		FROM leave_quotas
		WHERE citizen_id = $1 AND fiscal_year = $2
	`

	rows, err := q.Query(ctx, query, citizenID, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave quotas: %w", err)
	}
	defer rows.Close()

	var quotas []leave.Quota
	for rows.Next() {
		var quota leave.Quota
		if err := rows.Scan(
			&quota.ID, &quota.CitizenID, &quota.FiscalYear, &quota.Type, &quota.Days, &quota.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave quota: %w", err)
		}
		quotas = append(quotas, quota)
	}

	return quotas, rows.Err()
}

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) leave.HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT holiday_date, name
		FROM holidays
		WHERE holiday_date BETWEEN $1 AND $2
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []leave.Holiday
	for rows.Next() {
		var h leave.Holiday
		if err := rows.Scan(&h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}
