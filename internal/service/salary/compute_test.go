package salary

import (
	"testing"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/leave"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func lineAmount(t *testing.T, comp DraftComputation, itemName string) decimal.Decimal {
	t.Helper()
	for _, line := range comp.Lines {
		if line.ItemName == itemName {
			return line.Amount
		}
	}
	t.Fatalf("line %q not found", itemName)
	return decimal.Zero
}

func hasLine(comp DraftComputation, itemName string) bool {
	for _, line := range comp.Lines {
		if line.ItemName == itemName {
			return true
		}
	}
	return false
}

func TestComputeDraftBaseAndPremiums(t *testing.T) {
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(30000),
		InsuredSalary: d(30000),
		Insured:       true,
		LaborFee:      d(600),
		HealthFee:     d(400),
	})

	assert.True(t, lineAmount(t, comp, salary.ItemBasePay).Equal(d(30000)))
	assert.True(t, lineAmount(t, comp, salary.ItemLaborInsuranceFee).Equal(d(-600)))
	assert.True(t, lineAmount(t, comp, salary.ItemHealthInsuranceFee).Equal(d(-400)))

	assert.True(t, comp.TotalPayable.Equal(d(30000)))
	assert.True(t, comp.TotalDeduction.Equal(d(-1000)))
	assert.True(t, comp.Net.Equal(d(29000)), "net %s", comp.Net)

	// Every line here is bank-eligible.
	assert.True(t, comp.BankTransfer.Equal(d(29000)))
	assert.True(t, comp.Cash.IsZero())

	assert.True(t, comp.EmployerPension.Equal(d(1800)))
}

func TestComputeDraftBonusPaidInCash(t *testing.T) {
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(29500),
		InsuredSalary: d(29500),
		Insured:       true,
		LaborFee:      d(600),
		HealthFee:     d(400),
		Bonus:         d(500),
	})

	require.True(t, comp.Net.Equal(d(29000)), "net %s", comp.Net)
	assert.True(t, comp.BankTransfer.Equal(d(28500)), "bank %s", comp.BankTransfer)
	assert.True(t, comp.Cash.Equal(d(500)), "cash %s", comp.Cash)
}

func TestComputeDraftUninsuredAllCash(t *testing.T) {
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(30000),
		InsuredSalary: d(30000),
		Insured:       false,
	})

	assert.True(t, comp.Net.Equal(d(30000)))
	assert.True(t, comp.BankTransfer.IsZero())
	assert.True(t, comp.Cash.Equal(d(30000)))
	assert.True(t, comp.EmployerPension.IsZero())
	assert.False(t, hasLine(comp, salary.ItemLaborInsuranceFee))
}

func TestComputeDraftDependentsMultiplyHealthFee(t *testing.T) {
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(30000),
		InsuredSalary: d(30000),
		Dependents:    2,
		Insured:       true,
		HealthFee:     d(400),
	})

	assert.True(t, lineAmount(t, comp, salary.ItemHealthInsuranceFee).Equal(d(-1200)))
}

func TestComputeDraftOvertimeTiers(t *testing.T) {
	// Base 24000 converts to an hourly rate of 100.
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(24000),
		InsuredSalary: d(24000),
		Insured:       true,
		Attendance: attendance.MonthlySummary{
			Overtime1Minutes: 120,
			Overtime2Minutes: 30,
			Overtime3Minutes: 30,
		},
	})

	assert.True(t, lineAmount(t, comp, salary.ItemOvertimePay1).Equal(d(268)))
	assert.True(t, lineAmount(t, comp, salary.ItemOvertimePay2).Equal(d(167)))
}

func TestComputeDraftLeaveDeductions(t *testing.T) {
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(24000),
		InsuredSalary: d(24000),
		Insured:       true,
		LeaveHours: map[leave.LeaveType]float64{
			leave.LeaveTypePersonal: 8,
			leave.LeaveTypeSick:     8,
			leave.LeaveTypeAnnual:   16, // annual leave is paid, no deduction
		},
	})

	assert.True(t, lineAmount(t, comp, salary.ItemPersonalLeave).Equal(d(-800)))
	assert.True(t, lineAmount(t, comp, salary.ItemSickLeave).Equal(d(-400)))
}

func TestComputeDraftAttendanceDeductions(t *testing.T) {
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(24000),
		InsuredSalary: d(24000),
		Insured:       true,
		Attendance: attendance.MonthlySummary{
			LateMinutes:       30,
			EarlyLeaveMinutes: 12,
		},
	})

	assert.True(t, lineAmount(t, comp, salary.ItemLateDeduction).Equal(d(-50)))
	assert.True(t, lineAmount(t, comp, salary.ItemEarlyLeaveDeduction).Equal(d(-20)))
}

func TestComputeDraftStandingItems(t *testing.T) {
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(30000),
		InsuredSalary: d(30000),
		Insured:       true,
		Standing: []salary.StandingItem{
			{ItemName: "Meal Allowance", ItemKind: salary.ItemKindEarning, Amount: d(2000)},
			{ItemName: "Dormitory Fee", ItemKind: salary.ItemKindDeduction, Amount: d(300)},
		},
	})

	assert.True(t, lineAmount(t, comp, "Meal Allowance").Equal(d(2000)))
	// Deduction amounts normalize to negative.
	assert.True(t, lineAmount(t, comp, "Dormitory Fee").Equal(d(-300)))

	// Standing items are not bank-eligible.
	assert.True(t, comp.Net.Equal(d(31700)))
	assert.True(t, comp.BankTransfer.Equal(d(30000)))
	assert.True(t, comp.Cash.Equal(d(1700)))
}

func TestComputeDraftDropsZeroLines(t *testing.T) {
	comp := ComputeDraft(DraftInputs{
		BaseSalary:    d(30000),
		InsuredSalary: d(30000),
		Insured:       true,
	})

	require.True(t, hasLine(comp, salary.ItemBasePay))
	assert.False(t, hasLine(comp, salary.ItemOvertimePay1))
	assert.False(t, hasLine(comp, salary.ItemBonus))
	assert.False(t, hasLine(comp, salary.ItemLateDeduction))
}
