package salary

import (
	"github.com/lumina-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/leave"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Monthly base salary converts at 30 days per month and 8 hours per day
// regardless of the actual calendar.
var (
	daysPerMonth   = decimal.NewFromInt(30)
	hoursPerDay    = decimal.NewFromInt(8)
	minutesPerHour = decimal.NewFromInt(60)
	sickLeaveRate  = decimal.NewFromFloat(0.5)
	pensionRate    = decimal.NewFromFloat(0.06)
	one            = decimal.NewFromInt(1)
)

// DraftInputs carries everything one employee's draft computation needs,
// already loaded. HealthFee is the per-person premium before the dependents
// multiplier.
type DraftInputs struct {
	BaseSalary    decimal.Decimal
	InsuredSalary decimal.Decimal
	Dependents    int
	Insured       bool
	Attendance    attendance.MonthlySummary
	LeaveHours    map[leave.LeaveType]float64
	Standing      []salary.StandingItem
	Bonus         decimal.Decimal
	LaborFee      decimal.Decimal
	HealthFee     decimal.Decimal
}

// LineAmount is one computed line before persistence resolves the item id.
type LineAmount struct {
	ItemName string
	ItemKind salary.ItemKind
	Amount   decimal.Decimal
}

type DraftComputation struct {
	Lines           []LineAmount
	TotalPayable    decimal.Decimal
	TotalDeduction  decimal.Decimal
	Net             decimal.Decimal
	BankTransfer    decimal.Decimal
	Cash            decimal.Decimal
	EmployerPension decimal.Decimal
}

// ComputeDraft derives the full set of salary lines and totals for one
// employee and month. Deductions come out negative; every amount is rounded
// to an integer. Zero-amount lines are dropped except Base Pay, which is
// always present.
func ComputeDraft(in DraftInputs) DraftComputation {
	dailyRate := in.BaseSalary.Div(daysPerMonth)
	hourlyRate := dailyRate.Div(hoursPerDay)
	perMinuteRate := hourlyRate.Div(minutesPerHour)

	var lines []LineAmount
	addLine := func(name string, kind salary.ItemKind, amount decimal.Decimal) {
		if amount.IsZero() && name != salary.ItemBasePay {
			return
		}
		lines = append(lines, LineAmount{ItemName: name, ItemKind: kind, Amount: amount})
	}

	addLine(salary.ItemBasePay, salary.ItemKindEarning, in.BaseSalary.Round(0))

	for _, standing := range in.Standing {
		amount := standing.Amount.Round(0)
		if standing.ItemKind == salary.ItemKindDeduction && amount.Sign() > 0 {
			amount = amount.Neg()
		}
		addLine(standing.ItemName, standing.ItemKind, amount)
	}

	tier2Minutes := in.Attendance.Overtime2Minutes + in.Attendance.Overtime3Minutes
	addLine(salary.ItemOvertimePay1, salary.ItemKindEarning,
		overtimeTierAmount(in.Attendance.Overtime1Minutes, hourlyRate, OvertimeTier1Rate))
	addLine(salary.ItemOvertimePay2, salary.ItemKindEarning,
		overtimeTierAmount(tier2Minutes, hourlyRate, OvertimeTier2Rate))

	addLine(salary.ItemBonus, salary.ItemKindEarning, in.Bonus.Round(0))

	personalHours := decimal.NewFromFloat(in.LeaveHours[leave.LeaveTypePersonal])
	addLine(salary.ItemPersonalLeave, salary.ItemKindDeduction,
		personalHours.Mul(hourlyRate).Round(0).Neg())

	sickHours := decimal.NewFromFloat(in.LeaveHours[leave.LeaveTypeSick])
	addLine(salary.ItemSickLeave, salary.ItemKindDeduction,
		sickHours.Mul(hourlyRate).Mul(sickLeaveRate).Round(0).Neg())

	addLine(salary.ItemLateDeduction, salary.ItemKindDeduction,
		decimal.NewFromInt(int64(in.Attendance.LateMinutes)).Mul(perMinuteRate).Round(0).Neg())
	addLine(salary.ItemEarlyLeaveDeduction, salary.ItemKindDeduction,
		decimal.NewFromInt(int64(in.Attendance.EarlyLeaveMinutes)).Mul(perMinuteRate).Round(0).Neg())

	addLine(salary.ItemLaborInsuranceFee, salary.ItemKindDeduction, in.LaborFee.Round(0).Neg())

	dependents := decimal.NewFromInt(int64(in.Dependents)).Add(one)
	addLine(salary.ItemHealthInsuranceFee, salary.ItemKindDeduction,
		in.HealthFee.Mul(dependents).Round(0).Neg())

	comp := DraftComputation{Lines: lines}
	comp.TotalPayable, comp.TotalDeduction, comp.Net = sumLineAmounts(lines)
	comp.BankTransfer, comp.Cash = SplitBankCash(lines, comp.Net, in.Insured)

	if in.Insured {
		comp.EmployerPension = in.InsuredSalary.Mul(pensionRate).Round(0)
	} else {
		comp.EmployerPension = decimal.Zero
	}

	return comp
}

func sumLineAmounts(lines []LineAmount) (payable, deduction, net decimal.Decimal) {
	payable = decimal.Zero
	deduction = decimal.Zero
	for _, line := range lines {
		if line.Amount.Sign() >= 0 {
			payable = payable.Add(line.Amount)
		} else {
			deduction = deduction.Add(line.Amount)
		}
	}
	return payable, deduction, payable.Add(deduction)
}

// SplitBankCash routes the bank-eligible subset of the net through bank
// transfer; everything else is paid in cash. Uninsured employees are paid
// fully in cash.
func SplitBankCash(lines []LineAmount, net decimal.Decimal, insured bool) (bank, cash decimal.Decimal) {
	if !insured {
		return decimal.Zero, net
	}

	bank = decimal.Zero
	for _, line := range lines {
		if validator.IsInSlice(line.ItemName, salary.BankEligibleItems) {
			bank = bank.Add(line.Amount)
		}
	}
	return bank, net.Sub(bank)
}
