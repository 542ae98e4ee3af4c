package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nurihr/allowance-backend-go/internal/domain/employee"
	"github.com/nurihr/allowance-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByCitizenID(ctx context.Context, citizenID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, citizen_id, full_name, position_name, hire_date, created_at, updated_at
		FROM employees
		WHERE citizen_id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, citizenID).Scan(
		&emp.ID, &emp.CitizenID, &emp.FullName, &emp.PositionName,
		&emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}
