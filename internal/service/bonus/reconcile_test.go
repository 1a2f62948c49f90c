package bonus

import (
	"testing"
	"time"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/bonus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bill(sequence string, receivable, received int64, paidAt time.Time, salesperson string) bonus.BillLine {
	return bonus.BillLine{
		Sequence:      sequence,
		Payer:         "payer",
		Worker:        "worker",
		ItemName:      "installation",
		Receivable:    decimal.NewFromInt(receivable),
		Received:      decimal.NewFromInt(received),
		PaidAt:        paidAt,
		SalespersonID: salesperson,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestReconcileNormalPath(t *testing.T) {
	lines := []bonus.BillLine{
		bill("A-1", 10000, 6000, day(2026, time.January, 10), "emp-1"),
	}

	got := Reconcile(lines, 2026, 1)

	require.Contains(t, got, "emp-1")
	assert.True(t, got["emp-1"].Equal(decimal.NewFromInt(3000)), "got %s", got["emp-1"])
}

func TestReconcilePayoffPathAttributesFullReceivable(t *testing.T) {
	lines := []bonus.BillLine{
		bill("A-1", 10000, 6000, day(2026, time.January, 10), "emp-1"),
		bill("A-1", 10000, 4000, day(2026, time.February, 5), "emp-1"),
	}

	got := Reconcile(lines, 2026, 2)

	require.Contains(t, got, "emp-1")
	assert.True(t, got["emp-1"].Equal(decimal.NewFromInt(5000)), "got %s", got["emp-1"])
}

func TestReconcilePayoffToleratesRoundingShortfall(t *testing.T) {
	// Three equal installments of a 10,000 receivable sum to 9,999.99; the
	// last one must still settle the bill and attribute the full receivable.
	installment := decimal.RequireFromString("3333.33")
	mk := func(paidAt time.Time) bonus.BillLine {
		line := bill("A-1", 10000, 0, paidAt, "emp-1")
		line.Received = installment
		return line
	}

	lines := []bonus.BillLine{
		mk(day(2026, time.January, 10)),
		mk(day(2026, time.February, 10)),
		mk(day(2026, time.March, 10)),
	}

	got := Reconcile(lines, 2026, 3)

	require.Contains(t, got, "emp-1")
	assert.True(t, got["emp-1"].Equal(decimal.NewFromInt(5000)), "got %s", got["emp-1"])

	// Settled in March, so the earlier installments no longer count there.
	got = Reconcile(lines, 2026, 1)
	assert.NotContains(t, got, "emp-1")
}

func TestReconcileSettledBillExcludedFromOtherMonths(t *testing.T) {
	lines := []bonus.BillLine{
		bill("A-1", 10000, 6000, day(2026, time.January, 10), "emp-1"),
		bill("A-1", 10000, 4000, day(2026, time.February, 5), "emp-1"),
	}

	// Recomputing January with the full history: the bill settles in
	// February, so January no longer counts the installment.
	got := Reconcile(lines, 2026, 1)
	assert.NotContains(t, got, "emp-1")

	// And March sees nothing either.
	got = Reconcile(lines, 2026, 3)
	assert.NotContains(t, got, "emp-1")
}

func TestReconcileAbnormalLinesSkipped(t *testing.T) {
	abnormal := bill("B-1", 5000, 0, day(2026, time.January, 12), "emp-1")
	abnormal.Abnormal = true

	lines := []bonus.BillLine{
		abnormal,
		bill("C-1", 5000, 5000, day(2026, time.January, 20), "emp-1"),
	}

	got := Reconcile(lines, 2026, 1)

	// Only the settled C-1 counts: 5000 / 2.
	require.Contains(t, got, "emp-1")
	assert.True(t, got["emp-1"].Equal(decimal.NewFromInt(2500)), "got %s", got["emp-1"])
}

func TestReconcileSeparateIdentitiesAccumulate(t *testing.T) {
	lines := []bonus.BillLine{
		bill("A-1", 4000, 4000, day(2026, time.January, 5), "emp-1"),
		bill("A-2", 2000, 2000, day(2026, time.January, 8), "emp-1"),
		bill("A-3", 3000, 3000, day(2026, time.January, 9), "emp-2"),
	}

	got := Reconcile(lines, 2026, 1)

	assert.True(t, got["emp-1"].Equal(decimal.NewFromInt(3000)))
	assert.True(t, got["emp-2"].Equal(decimal.NewFromInt(1500)))
}

func TestReconcileRoundsHalfUp(t *testing.T) {
	lines := []bonus.BillLine{
		bill("A-1", 5001, 5001, day(2026, time.January, 5), "emp-1"),
	}

	got := Reconcile(lines, 2026, 1)

	// 5001 / 2 = 2500.5 rounds to 2501.
	assert.True(t, got["emp-1"].Equal(decimal.NewFromInt(2501)), "got %s", got["emp-1"])
}

func TestReconcileEmptyHistory(t *testing.T) {
	got := Reconcile(nil, 2026, 1)
	assert.Empty(t, got)
}

func TestParseReceived(t *testing.T) {
	tests := []struct {
		raw          string
		want         int64
		wantAbnormal bool
	}{
		{"6000", 6000, false},
		{"1,234", 1234, false},
		{" 500 ", 500, false},
		{"", 0, false},
		{"pending", 0, true},
		{"#manual", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, abnormal := parseReceived(tt.raw)
			assert.Equal(t, tt.wantAbnormal, abnormal)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}
