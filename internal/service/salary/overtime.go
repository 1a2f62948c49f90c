package salary

import (
	"github.com/shopspring/decimal"
)

// Statutory extended / further-extended overtime multipliers. The first two
// hours of special attendance pay 1.34x the hourly rate, anything beyond
// pays 1.67x.
var (
	OvertimeTier1Rate = decimal.NewFromFloat(1.34)
	OvertimeTier2Rate = decimal.NewFromFloat(1.67)
)

const overtimeTier1CapMinutes = 120

// SplitOvertimeMinutes splits a special-attendance duration into the two
// statutory multiplier tiers.
func SplitOvertimeMinutes(minutes int) (tier1, tier2 int) {
	if minutes <= 0 {
		return 0, 0
	}
	if minutes <= overtimeTier1CapMinutes {
		return minutes, 0
	}
	return overtimeTier1CapMinutes, minutes - overtimeTier1CapMinutes
}

// ComputeOvertimePay converts a special-attendance duration into pay,
// rounded to an integer amount.
func ComputeOvertimePay(durationHours float64, hourlyRate decimal.Decimal) decimal.Decimal {
	if durationHours <= 0 || hourlyRate.Sign() <= 0 {
		return decimal.Zero
	}

	duration := decimal.NewFromFloat(durationHours)
	knee := decimal.NewFromInt(2)

	if duration.LessThanOrEqual(knee) {
		return duration.Mul(hourlyRate).Mul(OvertimeTier1Rate).Round(0)
	}

	tier1 := knee.Mul(hourlyRate).Mul(OvertimeTier1Rate)
	tier2 := duration.Sub(knee).Mul(hourlyRate).Mul(OvertimeTier2Rate)
	return tier1.Add(tier2).Round(0)
}

// overtimeTierAmount prices minutes already attributed to one tier.
func overtimeTierAmount(minutes int, hourlyRate, multiplier decimal.Decimal) decimal.Decimal {
	if minutes <= 0 {
		return decimal.Zero
	}
	hours := decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
	return hours.Mul(hourlyRate).Mul(multiplier).Round(0)
}
