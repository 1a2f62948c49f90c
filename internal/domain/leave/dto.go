package leave

import (
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
)

// ImportRowRequest - one row of the external sheet export, keyed by the
// external request id. Re-import overwrites by that id.
type ImportRowRequest struct {
	ExternalID   string `json:"external_id"`
	EmployeeName string `json:"employee_name"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	StartAt      string `json:"start_at"`
	EndAt        string `json:"end_at"`
}

type ImportRequest struct {
	Rows []ImportRowRequest `json:"rows"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "is required"})
	}
	for i, row := range r.Rows {
		if validator.IsEmpty(row.ExternalID) {
			errs = append(errs, validator.ValidationError{Field: "rows[" + validator.Itoa(i) + "].external_id", Message: "is required"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RowError struct {
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors,omitempty"`
}

type RequestResponse struct {
	ID            string  `json:"id"`
	ExternalID    string  `json:"external_id"`
	EmployeeID    string  `json:"employee_id"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	StartAt       string  `json:"start_at"`
	EndAt         string  `json:"end_at"`
	BillableHours float64 `json:"billable_hours"`
}
