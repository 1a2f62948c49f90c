package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Code       string
	Name       string
	HireDate   time.Time
	ResignDate *time.Time
	BankNo     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SalaryBase - one effective-dated row of salary_base_history.
// The row in force for a month is the one with the latest StartDate <= month end.
type SalaryBase struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	BaseSalary    decimal.Decimal
	InsuredSalary decimal.Decimal
	Dependents    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CompanyEnrollment - one employee_company_history span. An employee with an
// insured span overlapping a month is bank-transfer eligible that month.
type CompanyEnrollment struct {
	ID          string
	EmployeeID  string
	CompanyName string
	StartDate   time.Time
	EndDate     *time.Time
	Insured     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
