package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// UpsertDay implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) UpsertDay(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_days (
			id, employee_id, date, clock_in, clock_out,
			late_minutes, early_leave_minutes, absence_minutes,
			overtime_1_minutes, overtime_2_minutes, overtime_3_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			late_minutes = EXCLUDED.late_minutes,
			early_leave_minutes = EXCLUDED.early_leave_minutes,
			absence_minutes = EXCLUDED.absence_minutes,
			overtime_1_minutes = EXCLUDED.overtime_1_minutes,
			overtime_2_minutes = EXCLUDED.overtime_2_minutes,
			overtime_3_minutes = EXCLUDED.overtime_3_minutes,
			updated_at = NOW()
		RETURNING id, employee_id, date, clock_in, clock_out,
			late_minutes, early_leave_minutes, absence_minutes,
			overtime_1_minutes, overtime_2_minutes, overtime_3_minutes,
			created_at, updated_at
	`

	var saved attendance.Day
	err := q.QueryRow(ctx, query,
		day.ID, day.EmployeeID, day.Date, day.ClockIn, day.ClockOut,
		day.LateMinutes, day.EarlyLeaveMinutes, day.AbsenceMinutes,
		day.Overtime1Minutes, day.Overtime2Minutes, day.Overtime3Minutes,
	).Scan(
		&saved.ID, &saved.EmployeeID, &saved.Date, &saved.ClockIn, &saved.ClockOut,
		&saved.LateMinutes, &saved.EarlyLeaveMinutes, &saved.AbsenceMinutes,
		&saved.Overtime1Minutes, &saved.Overtime2Minutes, &saved.Overtime3Minutes,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to upsert attendance day: %w", err)
	}

	return saved, nil
}

// GetByEmployeeDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (attendance.Day, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out,
			late_minutes, early_leave_minutes, absence_minutes,
			overtime_1_minutes, overtime_2_minutes, overtime_3_minutes,
			created_at, updated_at
		FROM attendance_days
		WHERE employee_id = $1 AND date = $2
	`

	var day attendance.Day
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&day.ID, &day.EmployeeID, &day.Date, &day.ClockIn, &day.ClockOut,
		&day.LateMinutes, &day.EarlyLeaveMinutes, &day.AbsenceMinutes,
		&day.Overtime1Minutes, &day.Overtime2Minutes, &day.Overtime3Minutes,
		&day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Day{}, attendance.ErrDayNotFound
		}
		return attendance.Day{}, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return day, nil
}

// GetMonthlySummaries implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetMonthlySummaries(ctx context.Context, year, month int, employeeIDs []string) ([]attendance.MonthlySummary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT employee_id,
			COUNT(*) FILTER (WHERE clock_in IS NOT NULL) AS work_days,
			COALESCE(SUM(late_minutes), 0),
			COALESCE(SUM(early_leave_minutes), 0),
			COALESCE(SUM(absence_minutes), 0),
			COALESCE(SUM(overtime_1_minutes), 0),
			COALESCE(SUM(overtime_2_minutes), 0),
			COALESCE(SUM(overtime_3_minutes), 0)
		FROM attendance_days
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		  AND ($3::text[] IS NULL OR employee_id::text = ANY($3::text[]))
		GROUP BY employee_id
	`

	var filter any
	if len(employeeIDs) > 0 {
		filter = employeeIDs
	}

	rows, err := q.Query(ctx, query, year, month, filter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []attendance.MonthlySummary
	for rows.Next() {
		var sum attendance.MonthlySummary
		err := rows.Scan(
			&sum.EmployeeID, &sum.WorkDays,
			&sum.LateMinutes, &sum.EarlyLeaveMinutes, &sum.AbsenceMinutes,
			&sum.Overtime1Minutes, &sum.Overtime2Minutes, &sum.Overtime3Minutes,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
