package insurance

import (
	"time"

	"github.com/shopspring/decimal"
)

type InsuranceType string

const (
	TypeLabor  InsuranceType = "labor"
	TypeHealth InsuranceType = "health"
)

// GradeRow - one bracket of an effective-dated rate table version. All rows
// sharing (type, start_date) form one version; versions replace each other
// wholesale on a government rate revision. Within a version the salary bands
// are contiguous and non-overlapping, and the highest grade is open-ended
// upward.
type GradeRow struct {
	ID            string
	Type          InsuranceType
	StartDate     time.Time
	Grade         int
	SalaryMin     decimal.Decimal
	SalaryMax     decimal.Decimal
	EmployeeFee   decimal.Decimal
	EmployerFee   decimal.Decimal
	GovernmentFee decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
