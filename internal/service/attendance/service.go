package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/employee"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/lumina-hr/payroll-backend-go/internal/repository/postgresql"
	salaryService "github.com/lumina-hr/payroll-backend-go/internal/service/salary"
)

type AttendanceService struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceService {
	return &AttendanceService{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Import upserts raw time-clock rows keyed by (employee, date). Unknown
// employees and unparseable dates skip the row; malformed clock or overtime
// fields degrade that field to empty/zero. Both cases are reported, neither
// aborts the batch.
func (s *AttendanceService) Import(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResult{}, err
	}

	var prepared []attendance.Day
	var rowErrors []attendance.RowError

	for _, row := range req.Rows {
		ref := fmt.Sprintf("%s/%s", row.EmployeeID, row.Date)

		if _, err := s.employeeRepo.GetByID(ctx, row.EmployeeID); err != nil {
			rowErrors = append(rowErrors, attendance.RowError{
				Ref:    ref,
				Reason: fmt.Sprintf("employee %s not found", row.EmployeeID),
			})
			continue
		}

		date, ok := validator.IsValidDate(row.Date)
		if !ok {
			rowErrors = append(rowErrors, attendance.RowError{Ref: ref, Reason: "unparseable date"})
			continue
		}

		day := attendance.Day{
			ID:                uuid.NewString(),
			EmployeeID:        row.EmployeeID,
			Date:              date,
			LateMinutes:       row.LateMinutes,
			EarlyLeaveMinutes: row.EarlyLeaveMinutes,
			AbsenceMinutes:    row.AbsenceMinutes,
		}

		var degraded bool
		day.ClockIn, degraded = parseClockOn(date, row.ClockIn)
		if degraded {
			rowErrors = append(rowErrors, attendance.RowError{Ref: ref, Reason: "unparseable clock_in, stored empty"})
		}
		day.ClockOut, degraded = parseClockOn(date, row.ClockOut)
		if degraded {
			rowErrors = append(rowErrors, attendance.RowError{Ref: ref, Reason: "unparseable clock_out, stored empty"})
		}

		overtimeMinutes, reason := overtimeDuration(date, row.OvertimeStart, row.OvertimeEnd)
		if reason != "" {
			rowErrors = append(rowErrors, attendance.RowError{Ref: ref, Reason: reason})
		}
		day.Overtime1Minutes, day.Overtime2Minutes = salaryService.SplitOvertimeMinutes(overtimeMinutes)

		prepared = append(prepared, day)
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, day := range prepared {
			if _, err := s.attendanceRepo.UpsertDay(txCtx, day); err != nil {
				return fmt.Errorf("failed to upsert attendance day %s/%s: %w", day.EmployeeID, day.Date.Format("2006-01-02"), err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.ImportResult{}, err
	}

	return attendance.ImportResult{Imported: len(prepared), Errors: rowErrors}, nil
}

func (s *AttendanceService) MonthlySummaries(ctx context.Context, year, month int) ([]attendance.MonthlySummaryResponse, error) {
	if !validator.IsValidPeriod(year, month) {
		return nil, validator.ValidationErrors{{Field: "period", Message: "year/month out of range"}}
	}

	summaries, err := s.attendanceRepo.GetMonthlySummaries(ctx, year, month, nil)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.MonthlySummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		result = append(result, attendance.MonthlySummaryResponse{
			EmployeeID:        sum.EmployeeID,
			WorkDays:          sum.WorkDays,
			LateMinutes:       sum.LateMinutes,
			EarlyLeaveMinutes: sum.EarlyLeaveMinutes,
			AbsenceMinutes:    sum.AbsenceMinutes,
			Overtime1Minutes:  sum.Overtime1Minutes,
			Overtime2Minutes:  sum.Overtime2Minutes,
			Overtime3Minutes:  sum.Overtime3Minutes,
		})
	}

	return result, nil
}

// parseClockOn anchors a wall-clock string on the given date. Returns
// degraded=true when the value is present but unparseable.
func parseClockOn(date time.Time, clock *string) (*time.Time, bool) {
	if clock == nil || *clock == "" {
		return nil, false
	}
	c, ok := validator.IsValidClock(*clock)
	if !ok {
		return nil, true
	}
	t := time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), c.Second(), 0, date.Location())
	return &t, false
}

// overtimeDuration computes the special-attendance interval in minutes.
// An interval ending before it starts degrades to zero with a report.
func overtimeDuration(date time.Time, start, end *string) (int, string) {
	if start == nil || end == nil || *start == "" || *end == "" {
		return 0, ""
	}
	s, okStart := validator.IsValidClock(*start)
	e, okEnd := validator.IsValidClock(*end)
	if !okStart || !okEnd {
		return 0, "unparseable overtime interval, stored zero"
	}
	startAt := time.Date(date.Year(), date.Month(), date.Day(), s.Hour(), s.Minute(), 0, 0, date.Location())
	endAt := time.Date(date.Year(), date.Month(), date.Day(), e.Hour(), e.Minute(), 0, 0, date.Location())
	if endAt.Before(startAt) {
		return 0, "overtime interval ends before it starts, stored zero"
	}
	return int(endAt.Sub(startAt).Minutes()), ""
}
