package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/employee"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, hire_date, resign_date, bank_account_number, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.HireDate, &emp.ResignDate,
		&emp.BankNo, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}

	return emp, nil
}

// GetByName implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, hire_date, resign_date, bank_account_number, created_at, updated_at
		FROM employees
		WHERE full_name = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, name).Scan(
		&emp.ID, &emp.Code, &emp.Name, &emp.HireDate, &emp.ResignDate,
		&emp.BankNo, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with name %s: %w", name, err)
	}

	return emp, nil
}

// GetActiveInPeriod implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveInPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, hire_date, resign_date, bank_account_number, created_at, updated_at
		FROM employees
		WHERE hire_date <= $2
		  AND (resign_date IS NULL OR resign_date >= $1)
		ORDER BY employee_code
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Code, &emp.Name, &emp.HireDate, &emp.ResignDate,
			&emp.BankNo, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetSalaryBaseAsOf implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetSalaryBaseAsOf(ctx context.Context, employeeID string, asOf time.Time) (employee.SalaryBase, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, start_date, base_salary, insured_salary, dependents, created_at, updated_at
		FROM salary_base_history
		WHERE employee_id = $1 AND start_date <= $2
		ORDER BY start_date DESC
		LIMIT 1
	`

	var base employee.SalaryBase
	err := q.QueryRow(ctx, query, employeeID, asOf).Scan(
		&base.ID, &base.EmployeeID, &base.StartDate, &base.BaseSalary,
		&base.InsuredSalary, &base.Dependents, &base.CreatedAt, &base.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.SalaryBase{}, employee.ErrSalaryBaseNotFound
		}
		return employee.SalaryBase{}, fmt.Errorf("failed to get salary base for employee %s: %w", employeeID, err)
	}

	return base, nil
}

// HasInsuredEnrollment implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) HasInsuredEnrollment(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM employee_company_history
			WHERE employee_id = $1
			  AND insured = TRUE
			  AND start_date <= $3
			  AND (end_date IS NULL OR end_date >= $2)
		)
	`

	var insured bool
	err := q.QueryRow(ctx, query, employeeID, periodStart, periodEnd).Scan(&insured)
	if err != nil {
		return false, fmt.Errorf("failed to check insured enrollment for employee %s: %w", employeeID, err)
	}

	return insured, nil
}
