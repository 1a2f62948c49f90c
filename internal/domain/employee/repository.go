package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByName(ctx context.Context, name string) (Employee, error)

	// GetActiveInPeriod returns employees employed on or before periodEnd and
	// not resigned before periodStart.
	GetActiveInPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]Employee, error)

	// GetSalaryBaseAsOf returns the salary_base_history row with the latest
	// start_date <= asOf for the employee.
	GetSalaryBaseAsOf(ctx context.Context, employeeID string, asOf time.Time) (SalaryBase, error)

	// HasInsuredEnrollment reports whether any insured company span overlaps
	// [periodStart, periodEnd].
	HasInsuredEnrollment(ctx context.Context, employeeID string, periodStart, periodEnd time.Time) (bool, error)
}
