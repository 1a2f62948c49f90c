package bonus

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BillLine - one commission-eligible billing event, possibly one of several
// partial payments of the same bill identity.
type BillLine struct {
	ID            string
	Sequence      string
	Payer         string
	Worker        string
	ItemName      string
	Receivable    decimal.Decimal
	Received      decimal.Decimal
	Abnormal      bool
	PaidAt        time.Time
	SalespersonID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IdentityKey forms the composite bill identity shared by all partial
// payments of one billing event.
func (b BillLine) IdentityKey() string {
	return strings.Join([]string{
		b.Sequence,
		b.Payer,
		b.Worker,
		b.ItemName,
		b.Receivable.String(),
	}, "|")
}

// MonthlySummary - the settled single commission figure per salesperson that
// feeds into payroll. Overwritten wholesale per month on recomputation.
type MonthlySummary struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
