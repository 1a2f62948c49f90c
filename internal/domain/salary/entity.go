package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft Status = "draft"
	StatusFinal Status = "final"
)

// Record - one employee, one (year, month) salary header. A final record is
// immutable except through an explicit revert back to draft.
type Record struct {
	ID              string
	EmployeeID      string
	Year            int
	Month           int
	Status          Status
	TotalPayable    decimal.Decimal
	TotalDeduction  decimal.Decimal
	Net             decimal.Decimal
	BankTransfer    decimal.Decimal
	Cash            decimal.Decimal
	EmployerPension decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
	Lines        []Line
}

// Line - (record, item, amount). Deduction amounts are stored negative.
type Line struct {
	ID       string
	RecordID string
	ItemID   string
	Amount   decimal.Decimal

	// Joined fields
	ItemName string
	ItemKind ItemKind
}

type ItemKind string

const (
	ItemKindEarning   ItemKind = "earning"
	ItemKindDeduction ItemKind = "deduction"
)

// ItemDefinition - a named salary line item. Items referenced by historical
// lines are soft-disabled, never deleted.
type ItemDefinition struct {
	ID        string
	Name      string
	Kind      ItemKind
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StandingItem - a recurring employee_salary_item setting effective over
// [StartDate, EndDate].
type StandingItem struct {
	ID         string
	EmployeeID string
	ItemID     string
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time

	// Joined fields
	ItemName string
	ItemKind ItemKind
}

// Built-in item names the engine writes directly.
const (
	ItemBasePay             = "Base Pay"
	ItemOvertimePay1        = "Overtime Pay (1.34)"
	ItemOvertimePay2        = "Overtime Pay (1.67)"
	ItemLaborInsuranceFee   = "Labor Insurance Fee"
	ItemHealthInsuranceFee  = "Health Insurance Fee"
	ItemPersonalLeave       = "Personal Leave Deduction"
	ItemSickLeave           = "Sick Leave Deduction"
	ItemLateDeduction       = "Late Deduction"
	ItemEarlyLeaveDeduction = "Early Leave Deduction"
	ItemBonus               = "Bonus"
)

// BankEligibleItems is the fixed set of line items paid by bank transfer for
// insured employees; everything else is paid in cash.
// TODO: confirm with the payroll owner whether this should become a per-item
// flag on ItemDefinition.
var BankEligibleItems = []string{
	ItemBasePay,
	ItemOvertimePay1,
	ItemOvertimePay2,
	ItemLaborInsuranceFee,
	ItemHealthInsuranceFee,
	ItemPersonalLeave,
	ItemSickLeave,
	ItemLateDeduction,
	ItemEarlyLeaveDeduction,
}
