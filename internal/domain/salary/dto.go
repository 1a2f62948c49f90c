package salary

import (
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATION DTOs ==========

type GenerateRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	// Optional subset; empty means every active employee of the month.
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year/month out of range"})
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

type GenerateResult struct {
	Year      int        `json:"year"`
	Month     int        `json:"month"`
	Generated int        `json:"generated"`
	Skipped   []RowError `json:"skipped,omitempty"`
}

// ========== LIFECYCLE DTOs ==========

type FinalizeRequest struct {
	Year        int      `json:"year"`
	Month       int      `json:"month"`
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *FinalizeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year/month out of range"})
	}
	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RevertRequest struct {
	Year        int      `json:"year"`
	Month       int      `json:"month"`
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *RevertRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Year, r.Month) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "year/month out of range"})
	}
	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LifecycleResult struct {
	Updated int        `json:"updated"`
	Skipped []RowError `json:"skipped,omitempty"`
}

// ========== ADJUSTMENT DTOs ==========

// AdjustLineRequest upserts a single line on a draft record.
type AdjustLineRequest struct {
	RecordID string          `json:"-"`
	ItemName string          `json:"item_name"`
	Amount   decimal.Decimal `json:"amount"`
}

func (r *AdjustLineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ItemName) {
		errs = append(errs, validator.ValidationError{Field: "item_name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type LineResponse struct {
	ItemName string          `json:"item_name"`
	ItemKind string          `json:"item_kind"`
	Amount   decimal.Decimal `json:"amount"`
}

type RecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Status          string          `json:"status"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	TotalDeduction  decimal.Decimal `json:"total_deduction"`
	Net             decimal.Decimal `json:"net"`
	BankTransfer    decimal.Decimal `json:"bank_transfer"`
	Cash            decimal.Decimal `json:"cash"`
	EmployerPension decimal.Decimal `json:"employer_pension"`
	Lines           []LineResponse  `json:"lines,omitempty"`
}

// ========== ITEM MASTER DTOs ==========

type CreateItemRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"` // "earning" or "deduction"
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Kind != string(ItemKindEarning) && r.Kind != string(ItemKindDeduction) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be 'earning' or 'deduction'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateItemRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type ItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	IsActive bool   `json:"is_active"`
}
