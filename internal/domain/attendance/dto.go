package attendance

import (
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
)

// ImportDayRequest - one raw time-clock row. Clock fields are wall-clock
// strings ("08:02"); malformed values degrade to empty/zero and are reported,
// they never abort the batch.
type ImportDayRequest struct {
	EmployeeID        string  `json:"employee_id"`
	Date              string  `json:"date"`
	ClockIn           *string `json:"clock_in,omitempty"`
	ClockOut          *string `json:"clock_out,omitempty"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	AbsenceMinutes    int     `json:"absence_minutes"`
	// Special (non-scheduled) attendance interval; its duration is converted
	// to tiered overtime minutes.
	OvertimeStart *string `json:"overtime_start,omitempty"`
	OvertimeEnd   *string `json:"overtime_end,omitempty"`
}

type ImportRequest struct {
	Rows []ImportDayRequest `json:"rows"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RowError - one skipped or degraded row in a batch report.
type RowError struct {
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors,omitempty"`
}

type MonthlySummaryResponse struct {
	EmployeeID        string `json:"employee_id"`
	WorkDays          int    `json:"work_days"`
	LateMinutes       int    `json:"late_minutes"`
	EarlyLeaveMinutes int    `json:"early_leave_minutes"`
	AbsenceMinutes    int    `json:"absence_minutes"`
	Overtime1Minutes  int    `json:"overtime_1_minutes"`
	Overtime2Minutes  int    `json:"overtime_2_minutes"`
	Overtime3Minutes  int    `json:"overtime_3_minutes"`
}
