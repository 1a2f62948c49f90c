package bonus

import (
	"context"
	"time"
)

type BonusRepository interface {
	// UpsertBillLines writes scraped bill lines keyed on
	// (sequence, payer, worker, item_name, paid_at); re-importing an
	// overlapping window overwrites rather than duplicates.
	UpsertBillLines(ctx context.Context, lines []BillLine) error

	// GetBillLinesPaidThrough returns every bill line paid strictly before
	// the cutoff.
	// Reconciliation needs the full payment history of each bill identity up
	// to the end of the target month.
	GetBillLinesPaidThrough(ctx context.Context, cutoff time.Time) ([]BillLine, error)

	// ReplaceMonthlySummaries overwrites the month's summaries wholesale.
	ReplaceMonthlySummaries(ctx context.Context, year, month int, summaries []MonthlySummary) error

	// GetMonthlyBonusByEmployee returns the settled bonus per employee for
	// the month.
	GetMonthlyBonusByEmployee(ctx context.Context, year, month int) (map[string]MonthlySummary, error)
}
