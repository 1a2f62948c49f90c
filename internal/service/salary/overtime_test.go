package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSplitOvertimeMinutes(t *testing.T) {
	tests := []struct {
		name      string
		minutes   int
		wantTier1 int
		wantTier2 int
	}{
		{"zero", 0, 0, 0},
		{"negative", -30, 0, 0},
		{"under cap", 90, 90, 0},
		{"exactly cap", 120, 120, 0},
		{"over cap", 150, 120, 30},
		{"long shift", 300, 120, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier1, tier2 := SplitOvertimeMinutes(tt.minutes)
			assert.Equal(t, tt.wantTier1, tier1)
			assert.Equal(t, tt.wantTier2, tier2)
		})
	}
}

func TestComputeOvertimePay(t *testing.T) {
	rate := decimal.NewFromInt(200)

	tests := []struct {
		name  string
		hours float64
		want  int64
	}{
		{"zero duration", 0, 0},
		{"one hour", 1, 268},
		{"knee point", 2, 536},
		{"past knee", 3, 870},
		{"half hour", 0.5, 134},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOvertimePay(tt.hours, rate)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s", got)
		})
	}
}

func TestComputeOvertimePayContinuousAtKnee(t *testing.T) {
	rate := decimal.NewFromInt(200)

	below := ComputeOvertimePay(2, rate)
	above := ComputeOvertimePay(2.01, rate)

	// 0.01h at 1.67x of 200 is ~3.34; the step across the knee stays small.
	diff := above.Sub(below)
	assert.True(t, diff.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(4)), "discontinuity at knee: %s", diff)
}

func TestComputeOvertimePayNonPositiveRate(t *testing.T) {
	assert.True(t, ComputeOvertimePay(3, decimal.Zero).IsZero())
	assert.True(t, ComputeOvertimePay(3, decimal.NewFromInt(-10)).IsZero())
}
