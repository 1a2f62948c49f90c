package insurance

import (
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ImportGradeRowRequest struct {
	Grade         int             `json:"grade"`
	SalaryMin     decimal.Decimal `json:"salary_min"`
	SalaryMax     decimal.Decimal `json:"salary_max"`
	EmployeeFee   decimal.Decimal `json:"employee_fee"`
	EmployerFee   decimal.Decimal `json:"employer_fee"`
	GovernmentFee decimal.Decimal `json:"government_fee"`
}

// ImportVersionRequest replaces one (type, start_date) table version wholesale.
type ImportVersionRequest struct {
	Type      string                  `json:"type"`
	StartDate string                  `json:"start_date"`
	Rows      []ImportGradeRowRequest `json:"rows"`
}

func (r *ImportVersionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != string(TypeLabor) && r.Type != string(TypeHealth) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'labor' or 'health'"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{Field: "rows", Message: "is required"})
	}
	errs = append(errs, r.validateBands()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bands must come ordered by grade, each spanning a valid range, and tile
// the salary axis without gaps or overlaps; a gap would silently resolve a
// zero premium for salaries falling into it.
func (r *ImportVersionRequest) validateBands() validator.ValidationErrors {
	var errs validator.ValidationErrors

	for i, row := range r.Rows {
		field := "rows[" + validator.Itoa(i) + "]"

		if row.SalaryMax.LessThan(row.SalaryMin) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "salary_max must be >= salary_min"})
		}
		if i == 0 {
			continue
		}

		prev := r.Rows[i-1]
		if row.Grade <= prev.Grade {
			errs = append(errs, validator.ValidationError{Field: field, Message: "grades must be strictly ascending"})
		}
		step := row.SalaryMin.Sub(prev.SalaryMax)
		if step.Sign() <= 0 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "band overlaps the previous grade"})
		} else if step.GreaterThan(bandStep) {
			errs = append(errs, validator.ValidationError{Field: field, Message: "band leaves a gap after the previous grade"})
		}
	}

	return errs
}

// bandStep is the largest allowed jump between one band's max and the next
// band's min for the table to stay contiguous.
var bandStep = decimal.NewFromInt(1)

type PremiumResponse struct {
	Type          string          `json:"type"`
	InsuredSalary decimal.Decimal `json:"insured_salary"`
	AsOfDate      string          `json:"as_of_date"`
	EmployeeFee   decimal.Decimal `json:"employee_fee"`
}
