package bonus

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/bonus"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
	"github.com/lumina-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run against a provisioned test database (db/schema.sql) and
// are skipped when TEST_DATABASE_URL is not set.

var testBonusDB *database.DB

func bonusTestInit(t *testing.T) {
	t.Helper()
	if testBonusDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testBonusDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncateBonusTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"bonus_monthly_summaries", "bonus_bill_lines", "employees"} {
		_, err := testBonusDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestBonusService() *BonusService {
	return NewBonusService(
		testBonusDB,
		postgresql.NewBonusRepository(testBonusDB),
		postgresql.NewEmployeeRepository(testBonusDB),
	)
}

func seedSalesperson(t *testing.T, ctx context.Context, name string) string {
	t.Helper()

	employeeID := uuid.NewString()
	_, err := testBonusDB.Exec(ctx, `
		INSERT INTO employees (id, employee_code, full_name, hire_date)
		VALUES ($1, $2, $3, $4)
	`, employeeID, "S001", name, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return employeeID
}

func TestImportBillsIdempotent(t *testing.T) {
	bonusTestInit(t)
	ctx := context.Background()
	truncateBonusTables(t, ctx)

	employeeID := seedSalesperson(t, ctx, "Lin Mei")
	svc := newTestBonusService()

	req := bonus.ImportRequest{Rows: []bonus.ImportRowRequest{{
		Sequence:        "A-1",
		Payer:           "payer",
		Worker:          "worker",
		ItemName:        "installation",
		Receivable:      decimal.NewFromInt(10000),
		Received:        "6000",
		PaidAt:          "2026-01-10",
		SalespersonName: "Lin Mei",
	}}}

	result, err := svc.Import(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	// Re-running the scraper over the same window overwrites, it must not
	// double the cumulative received sum.
	req.Rows[0].Received = "6,500"
	_, err = svc.Import(ctx, req)
	require.NoError(t, err)

	var count int
	err = testBonusDB.QueryRow(ctx, `SELECT COUNT(*) FROM bonus_bill_lines`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	summaries, err := svc.ReconcileMonth(ctx, bonus.ReconcileRequest{Year: 2026, Month: 1})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, employeeID, summaries[0].EmployeeID)
	assert.True(t, summaries[0].Amount.Equal(decimal.NewFromInt(3250)), "got %s", summaries[0].Amount)
}
