package bonus

import (
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ImportRowRequest - one scraped commission bill row. Received carries the
// raw text; a non-numeric marker flags manual/irregular handling upstream
// and the row is imported as abnormal with zero received amount.
type ImportRowRequest struct {
	Sequence        string          `json:"sequence"`
	Payer           string          `json:"payer"`
	Worker          string          `json:"worker"`
	ItemName        string          `json:"item_name"`
	Receivable      decimal.Decimal `json:"receivable"`
	Received        string          `json:"received"`
	PaidAt          string          `json:"paid_at"`
	SalespersonName string          `json:"salesperson_name"`
}

type ImportRequest struct {
	Rows []ImportRowRequest `json:"rows"`
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

type RowError struct {
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors,omitempty"`
}

type ReconcileRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year/month out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SummaryResponse struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}
