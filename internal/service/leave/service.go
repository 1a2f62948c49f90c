package leave

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/employee"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/leave"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/lumina-hr/payroll-backend-go/internal/repository/postgresql"
)

var knownLeaveTypes = []string{
	string(leave.LeaveTypeAnnual),
	string(leave.LeaveTypePersonal),
	string(leave.LeaveTypeSick),
	string(leave.LeaveTypeOfficial),
	string(leave.LeaveTypeMarriage),
	string(leave.LeaveTypeFuneral),
}

var knownLeaveStatuses = []string{
	string(leave.LeaveStatusPending),
	string(leave.LeaveStatusApproved),
	string(leave.LeaveStatusRejected),
}

type LeaveService struct {
	db           *database.DB
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	hourCalc     *HourCalculator
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	hourCalc *HourCalculator,
) *LeaveService {
	return &LeaveService{
		db:           db,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		hourCalc:     hourCalc,
	}
}

// Import upserts externally sourced leave requests by their external id.
// Billable hours are recomputed on every import; the hour computation (and
// its calendar fetches) runs before the batch transaction opens. Bad rows
// are reported and skipped, never fatal.
func (s *LeaveService) Import(ctx context.Context, req leave.ImportRequest) (leave.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return leave.ImportResult{}, err
	}

	var prepared []leave.Request
	var rowErrors []leave.RowError

	for _, row := range req.Rows {
		emp, err := s.employeeRepo.GetByName(ctx, row.EmployeeName)
		if err != nil {
			rowErrors = append(rowErrors, leave.RowError{
				Ref:    row.ExternalID,
				Reason: fmt.Sprintf("employee %q not found", row.EmployeeName),
			})
			continue
		}

		startAt, ok := validator.IsValidDateTime(row.StartAt)
		if !ok {
			rowErrors = append(rowErrors, leave.RowError{Ref: row.ExternalID, Reason: "unparseable start_at"})
			continue
		}
		endAt, ok := validator.IsValidDateTime(row.EndAt)
		if !ok {
			rowErrors = append(rowErrors, leave.RowError{Ref: row.ExternalID, Reason: "unparseable end_at"})
			continue
		}

		if !validator.IsInSlice(row.Type, knownLeaveTypes) {
			rowErrors = append(rowErrors, leave.RowError{
				Ref:    row.ExternalID,
				Reason: fmt.Sprintf("unknown leave type %q", row.Type),
			})
			continue
		}
		status := row.Status
		if !validator.IsInSlice(status, knownLeaveStatuses) {
			status = string(leave.LeaveStatusPending)
		}

		prepared = append(prepared, leave.Request{
			ID:            uuid.NewString(),
			ExternalID:    row.ExternalID,
			EmployeeID:    emp.ID,
			Type:          leave.LeaveType(row.Type),
			Status:        leave.LeaveStatus(status),
			StartAt:       startAt,
			EndAt:         endAt,
			BillableHours: s.hourCalc.Hours(ctx, startAt, endAt),
		})
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, request := range prepared {
			if _, err := s.leaveRepo.UpsertByExternalID(txCtx, request); err != nil {
				return fmt.Errorf("failed to upsert leave request %s: %w", request.ExternalID, err)
			}
		}
		return nil
	})
	if err != nil {
		return leave.ImportResult{}, err
	}

	return leave.ImportResult{Imported: len(prepared), Errors: rowErrors}, nil
}

func (s *LeaveService) ListByMonth(ctx context.Context, year, month int) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, leave.RequestResponse{
			ID:            r.ID,
			ExternalID:    r.ExternalID,
			EmployeeID:    r.EmployeeID,
			Type:          string(r.Type),
			Status:        string(r.Status),
			StartAt:       r.StartAt.Format("2006-01-02 15:04:05"),
			EndAt:         r.EndAt.Format("2006-01-02 15:04:05"),
			BillableHours: r.BillableHours,
		})
	}

	return result, nil
}
