package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// UpsertDay inserts or replaces the row keyed by (employee_id, date).
	UpsertDay(ctx context.Context, day Day) (Day, error)

	GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (Day, error)

	// GetMonthlySummaries aggregates attendance minutes per employee for the
	// month. employeeIDs narrows the result when non-empty.
	GetMonthlySummaries(ctx context.Context, year, month int, employeeIDs []string) ([]MonthlySummary, error)
}
