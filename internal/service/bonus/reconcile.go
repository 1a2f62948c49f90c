package bonus

import (
	"sort"
	"time"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/bonus"
	"github.com/shopspring/decimal"
)

var (
	commissionDivisor = decimal.NewFromInt(2)

	// A bill counts as paid off once the cumulative received is within one
	// currency unit of the receivable; installments split by rounding (e.g.
	// thirds of 10,000) must still settle.
	settlementTolerance = decimal.NewFromInt(1)
)

// Reconcile settles commission for one (year, month) from the full payment
// history up to the month's end. Bills paid off within the month attribute
// their full receivable once, on the payment that crosses the receivable;
// remaining bills attribute only the normal payments received inside the
// month. The commission is half the attributed sum, rounded to an integer,
// keyed by salesperson.
func Reconcile(lines []bonus.BillLine, year, month int) map[string]decimal.Decimal {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	inMonth := func(t time.Time) bool {
		return !t.Before(monthStart) && t.Before(monthEnd)
	}

	groups := make(map[string][]bonus.BillLine)
	for _, line := range lines {
		key := line.IdentityKey()
		groups[key] = append(groups[key], line)
	}

	attributed := make(map[string]decimal.Decimal)
	settled := make(map[string]bool)

	// Payoff path: walk each identity's payments in order and find the one
	// that brings the cumulative received up to the receivable. A settled
	// identity attributes its full receivable to the settlement month, exactly
	// once; settlement in an earlier month means it contributes nothing now.
	for key, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].PaidAt.Before(group[j].PaidAt)
		})

		cumulative := decimal.Zero
		for _, line := range group {
			if line.Abnormal {
				continue
			}
			cumulative = cumulative.Add(line.Received)
			if line.Receivable.Sub(cumulative).LessThanOrEqual(settlementTolerance) {
				settled[key] = true
				if inMonth(line.PaidAt) {
					attributed[line.SalespersonID] = attributed[line.SalespersonID].Add(line.Receivable)
				}
				break
			}
		}
	}

	// Normal path: bills still open contribute what actually arrived inside
	// the month.
	for _, line := range lines {
		if line.Abnormal || settled[line.IdentityKey()] {
			continue
		}
		if inMonth(line.PaidAt) {
			attributed[line.SalespersonID] = attributed[line.SalespersonID].Add(line.Received)
		}
	}

	commissions := make(map[string]decimal.Decimal, len(attributed))
	for salesperson, total := range attributed {
		commissions[salesperson] = total.Div(commissionDivisor).Round(0)
	}

	return commissions
}
