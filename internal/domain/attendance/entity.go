package attendance

import (
	"time"
)

// Day - one employee, one calendar date. Unique per (employee, date);
// re-import upserts, never duplicates.
type Day struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	ClockIn           *time.Time
	ClockOut          *time.Time
	LateMinutes       int
	EarlyLeaveMinutes int
	AbsenceMinutes    int
	// Overtime minutes split by statutory multiplier tier.
	Overtime1Minutes int
	Overtime2Minutes int
	Overtime3Minutes int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MonthlySummary - per-employee aggregate over one (year, month).
type MonthlySummary struct {
	EmployeeID        string
	WorkDays          int
	LateMinutes       int
	EarlyLeaveMinutes int
	AbsenceMinutes    int
	Overtime1Minutes  int
	Overtime2Minutes  int
	Overtime3Minutes  int
}
