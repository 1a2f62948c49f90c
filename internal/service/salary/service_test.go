package salary

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/insurance"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
	"github.com/lumina-hr/payroll-backend-go/internal/repository/postgresql"
	insuranceService "github.com/lumina-hr/payroll-backend-go/internal/service/insurance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against a provisioned test database (db/schema.sql) and
// are skipped when TEST_DATABASE_URL is not set.

var testSalaryDB *database.DB

func salaryTestInit(t *testing.T) {
	t.Helper()
	if testSalaryDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testSalaryDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncateSalaryTables(t *testing.T, ctx context.Context) {
	t.Helper()
	tables := []string{
		"salary_lines", "salary_records", "employee_salary_items", "salary_items",
		"bonus_monthly_summaries", "bonus_bill_lines",
		"leave_requests", "attendance_days", "insurance_grades",
		"employee_company_history", "salary_base_history", "employees",
	}
	for _, table := range tables {
		_, err := testSalaryDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestSalaryService() *SalaryService {
	premiums := insuranceService.NewResolver(postgresql.NewInsuranceGradeRepository(testSalaryDB))
	return NewSalaryService(
		testSalaryDB,
		postgresql.NewSalaryRepository(testSalaryDB),
		postgresql.NewSalaryItemRepository(testSalaryDB),
		postgresql.NewEmployeeRepository(testSalaryDB),
		postgresql.NewAttendanceRepository(testSalaryDB),
		postgresql.NewLeaveRequestRepository(testSalaryDB),
		postgresql.NewBonusRepository(testSalaryDB),
		premiums,
	)
}

// seedInsuredEmployee inserts an employee hired 2025-01-01 with a 30000 base
// from the same date and an open insured enrollment, plus single-band grade
// tables charging 600 labor / 400 health.
func seedInsuredEmployee(t *testing.T, ctx context.Context) string {
	t.Helper()

	employeeID := uuid.NewString()
	hireDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := testSalaryDB.Exec(ctx, `
		INSERT INTO employees (id, employee_code, full_name, hire_date)
		VALUES ($1, $2, $3, $4)
	`, employeeID, "E001", "Chen Wei", hireDate)
	require.NoError(t, err)

	_, err = testSalaryDB.Exec(ctx, `
		INSERT INTO salary_base_history (id, employee_id, start_date, base_salary, insured_salary, dependents)
		VALUES ($1, $2, $3, 30000, 30000, 0)
	`, uuid.NewString(), employeeID, hireDate)
	require.NoError(t, err)

	_, err = testSalaryDB.Exec(ctx, `
		INSERT INTO employee_company_history (id, employee_id, company_name, start_date, insured)
		VALUES ($1, $2, 'Lumina HR', $3, TRUE)
	`, uuid.NewString(), employeeID, hireDate)
	require.NoError(t, err)

	gradeRepo := postgresql.NewInsuranceGradeRepository(testSalaryDB)
	err = gradeRepo.ReplaceVersion(ctx, insurance.TypeLabor, hireDate, []insurance.GradeRow{{
		ID: uuid.NewString(), Type: insurance.TypeLabor, StartDate: hireDate,
		Grade: 1, SalaryMin: decimal.Zero, SalaryMax: decimal.NewFromInt(45800),
		EmployeeFee: decimal.NewFromInt(600), EmployerFee: decimal.NewFromInt(2100), GovernmentFee: decimal.NewFromInt(300),
	}})
	require.NoError(t, err)
	err = gradeRepo.ReplaceVersion(ctx, insurance.TypeHealth, hireDate, []insurance.GradeRow{{
		ID: uuid.NewString(), Type: insurance.TypeHealth, StartDate: hireDate,
		Grade: 1, SalaryMin: decimal.Zero, SalaryMax: decimal.NewFromInt(45800),
		EmployeeFee: decimal.NewFromInt(400), EmployerFee: decimal.NewFromInt(1300), GovernmentFee: decimal.NewFromInt(100),
	}})
	require.NoError(t, err)

	return employeeID
}

func TestGenerateFinalizeRevertLifecycle(t *testing.T) {
	salaryTestInit(t)
	ctx := context.Background()
	truncateSalaryTables(t, ctx)

	employeeID := seedInsuredEmployee(t, ctx)
	svc := newTestSalaryService()

	// Generate a draft.
	result, err := svc.Generate(ctx, salary.GenerateRequest{Year: 2026, Month: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
	assert.Empty(t, result.Skipped)

	records, err := svc.ListByPeriod(ctx, 2026, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, string(salary.StatusDraft), record.Status)
	assert.True(t, record.Net.Equal(decimal.NewFromInt(29000)), "net %s", record.Net)
	assert.True(t, record.BankTransfer.Equal(decimal.NewFromInt(29000)))
	assert.True(t, record.Cash.IsZero())
	assert.True(t, record.EmployerPension.Equal(decimal.NewFromInt(1800)))

	// Regenerating a draft overwrites it, not duplicates.
	result, err = svc.Generate(ctx, salary.GenerateRequest{Year: 2026, Month: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)

	records, err = svc.ListByPeriod(ctx, 2026, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Net.Equal(decimal.NewFromInt(29000)))

	// Finalize.
	lifecycle, err := svc.Finalize(ctx, salary.FinalizeRequest{Year: 2026, Month: 1, EmployeeIDs: []string{employeeID}})
	require.NoError(t, err)
	assert.Equal(t, 1, lifecycle.Updated)

	// A final record refuses regeneration.
	result, err = svc.Generate(ctx, salary.GenerateRequest{Year: 2026, Month: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, employeeID, result.Skipped[0].Ref)

	// Finalizing again is a reported no-op.
	lifecycle, err = svc.Finalize(ctx, salary.FinalizeRequest{Year: 2026, Month: 1, EmployeeIDs: []string{employeeID}})
	require.NoError(t, err)
	assert.Equal(t, 0, lifecycle.Updated)
	assert.Len(t, lifecycle.Skipped, 1)

	// Revert and regenerate.
	lifecycle, err = svc.Revert(ctx, salary.RevertRequest{Year: 2026, Month: 1, EmployeeIDs: []string{employeeID}})
	require.NoError(t, err)
	assert.Equal(t, 1, lifecycle.Updated)

	result, err = svc.Generate(ctx, salary.GenerateRequest{Year: 2026, Month: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Generated)
}

func TestGenerateSkipsEmployeeWithoutSalaryBase(t *testing.T) {
	salaryTestInit(t)
	ctx := context.Background()
	truncateSalaryTables(t, ctx)

	_, err := testSalaryDB.Exec(ctx, `
		INSERT INTO employees (id, employee_code, full_name, hire_date)
		VALUES ($1, 'E002', 'Lin Mei', '2025-06-01')
	`, uuid.NewString())
	require.NoError(t, err)

	svc := newTestSalaryService()

	result, err := svc.Generate(ctx, salary.GenerateRequest{Year: 2026, Month: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0].Reason, "no salary base")
}

func TestAdjustLineRecomputesTotals(t *testing.T) {
	salaryTestInit(t)
	ctx := context.Background()
	truncateSalaryTables(t, ctx)

	employeeID := seedInsuredEmployee(t, ctx)
	svc := newTestSalaryService()

	_, err := svc.Generate(ctx, salary.GenerateRequest{Year: 2026, Month: 1})
	require.NoError(t, err)

	records, err := svc.ListByPeriod(ctx, 2026, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	recordID := records[0].ID

	// A manual earning outside the bank-eligible set lands in cash.
	_, err = svc.CreateItem(ctx, salary.CreateItemRequest{Name: "Referral Bonus", Kind: "earning"})
	require.NoError(t, err)

	updated, err := svc.AdjustLine(ctx, salary.AdjustLineRequest{
		RecordID: recordID,
		ItemName: "Referral Bonus",
		Amount:   decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	assert.True(t, updated.Net.Equal(decimal.NewFromInt(30000)), "net %s", updated.Net)
	assert.True(t, updated.BankTransfer.Equal(decimal.NewFromInt(29000)))
	assert.True(t, updated.Cash.Equal(decimal.NewFromInt(1000)))

	// Once final, adjustments are rejected.
	_, err = svc.Finalize(ctx, salary.FinalizeRequest{Year: 2026, Month: 1, EmployeeIDs: []string{employeeID}})
	require.NoError(t, err)

	_, err = svc.AdjustLine(ctx, salary.AdjustLineRequest{
		RecordID: recordID,
		ItemName: "Referral Bonus",
		Amount:   decimal.NewFromInt(2000),
	})
	assert.ErrorIs(t, err, salary.ErrRecordFinal)
}

func TestDeleteDraftOnly(t *testing.T) {
	salaryTestInit(t)
	ctx := context.Background()
	truncateSalaryTables(t, ctx)

	employeeID := seedInsuredEmployee(t, ctx)
	svc := newTestSalaryService()

	_, err := svc.Generate(ctx, salary.GenerateRequest{Year: 2026, Month: 1})
	require.NoError(t, err)

	records, err := svc.ListByPeriod(ctx, 2026, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	recordID := records[0].ID

	_, err = svc.Finalize(ctx, salary.FinalizeRequest{Year: 2026, Month: 1, EmployeeIDs: []string{employeeID}})
	require.NoError(t, err)

	err = svc.DeleteRecord(ctx, recordID)
	assert.ErrorIs(t, err, salary.ErrCannotDeleteFinal)

	_, err = svc.Revert(ctx, salary.RevertRequest{Year: 2026, Month: 1, EmployeeIDs: []string{employeeID}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(ctx, recordID))

	records, err = svc.ListByPeriod(ctx, 2026, 1)
	require.NoError(t, err)
	assert.Empty(t, records)
}
