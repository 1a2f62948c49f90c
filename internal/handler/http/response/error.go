package response

import (
	"errors"
	"net/http"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/bonus"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/employee"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/insurance"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/leave"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSalaryBaseNotFound):
		NotFound(w, "No salary base effective in period")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, "Attendance day not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrUnknownLeaveType):
		BadRequest(w, "Unknown leave type", nil)

	// Insurance domain errors
	case errors.Is(err, insurance.ErrNoVersionInForce):
		NotFound(w, "No insurance grade table in force")
	case errors.Is(err, insurance.ErrInvalidType):
		BadRequest(w, "Insurance type must be 'labor' or 'health'", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrRecordFinal):
		Conflict(w, "Salary record is final")
	case errors.Is(err, salary.ErrRecordNotFinal):
		Conflict(w, "Salary record is not final")
	case errors.Is(err, salary.ErrCannotDeleteFinal):
		Conflict(w, "Cannot delete a final salary record")
	case errors.Is(err, salary.ErrItemNotFound):
		NotFound(w, "Salary item not found")
	case errors.Is(err, salary.ErrItemNameExists):
		Conflict(w, "Salary item name already exists")
	case errors.Is(err, salary.ErrItemReferenced):
		Conflict(w, "Salary item is referenced, disable it instead")
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid salary period", nil)

	// Bonus domain errors
	case errors.Is(err, bonus.ErrSummaryNotFound):
		NotFound(w, "Monthly bonus summary not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
