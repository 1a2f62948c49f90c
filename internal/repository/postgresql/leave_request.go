package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/leave"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// UpsertByExternalID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepositoryImpl) UpsertByExternalID(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			id, external_id, employee_id, leave_type, status, start_at, end_at, billable_hours
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (external_id) DO UPDATE SET
			employee_id = EXCLUDED.employee_id,
			leave_type = EXCLUDED.leave_type,
			status = EXCLUDED.status,
			start_at = EXCLUDED.start_at,
			end_at = EXCLUDED.end_at,
			billable_hours = EXCLUDED.billable_hours,
			updated_at = NOW()
		RETURNING id, external_id, employee_id, leave_type, status, start_at, end_at, billable_hours,
			created_at, updated_at
	`

	var saved leave.Request
	err := q.QueryRow(ctx, query,
		request.ID, request.ExternalID, request.EmployeeID, request.Type,
		request.Status, request.StartAt, request.EndAt, request.BillableHours,
	).Scan(
		&saved.ID, &saved.ExternalID, &saved.EmployeeID, &saved.Type, &saved.Status,
		&saved.StartAt, &saved.EndAt, &saved.BillableHours, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to upsert leave request %s: %w", request.ExternalID, err)
	}

	return saved, nil
}

// GetByExternalID implements leave.LeaveRequestRepository.
func (l *leaveRequestRepositoryImpl) GetByExternalID(ctx context.Context, externalID string) (leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, external_id, employee_id, leave_type, status, start_at, end_at, billable_hours,
			created_at, updated_at
		FROM leave_requests
		WHERE external_id = $1
	`

	var request leave.Request
	err := q.QueryRow(ctx, query, externalID).Scan(
		&request.ID, &request.ExternalID, &request.EmployeeID, &request.Type, &request.Status,
		&request.StartAt, &request.EndAt, &request.BillableHours, &request.CreatedAt, &request.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request %s: %w", externalID, err)
	}

	return request, nil
}

// GetApprovedHoursByMonth implements leave.LeaveRequestRepository.
func (l *leaveRequestRepositoryImpl) GetApprovedHoursByMonth(ctx context.Context, year, month int) ([]leave.MonthlyTypeHours, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT employee_id, leave_type, COALESCE(SUM(billable_hours), 0)
		FROM leave_requests
		WHERE status = $1
		  AND EXTRACT(YEAR FROM start_at) = $2 AND EXTRACT(MONTH FROM start_at) = $3
		GROUP BY employee_id, leave_type
	`

	rows, err := q.Query(ctx, query, leave.LeaveStatusApproved, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []leave.MonthlyTypeHours
	for rows.Next() {
		var th leave.MonthlyTypeHours
		if err := rows.Scan(&th.EmployeeID, &th.Type, &th.Hours); err != nil {
			return nil, err
		}
		hours = append(hours, th)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hours, nil
}

// ListByMonth implements leave.LeaveRequestRepository.
func (l *leaveRequestRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]leave.Request, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, external_id, employee_id, leave_type, status, start_at, end_at, billable_hours,
			created_at, updated_at
		FROM leave_requests
		WHERE EXTRACT(YEAR FROM start_at) = $1 AND EXTRACT(MONTH FROM start_at) = $2
		ORDER BY start_at
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var request leave.Request
		err := rows.Scan(
			&request.ID, &request.ExternalID, &request.EmployeeID, &request.Type, &request.Status,
			&request.StartAt, &request.EndAt, &request.BillableHours, &request.CreatedAt, &request.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
