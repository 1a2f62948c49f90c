package bonus

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/bonus"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/employee"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/lumina-hr/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type BonusService struct {
	db           *database.DB
	bonusRepo    bonus.BonusRepository
	employeeRepo employee.EmployeeRepository
}

func NewBonusService(
	db *database.DB,
	bonusRepo bonus.BonusRepository,
	employeeRepo employee.EmployeeRepository,
) *BonusService {
	return &BonusService{
		db:           db,
		bonusRepo:    bonusRepo,
		employeeRepo: employeeRepo,
	}
}

// Import stores scraped commission bill rows. A received value that does not
// parse as a number marks the line abnormal with zero amount; reconciliation
// skips abnormal lines but they stay visible in the history. Unknown
// salespeople and unparseable payment dates skip the row.
func (s *BonusService) Import(ctx context.Context, req bonus.ImportRequest) (bonus.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return bonus.ImportResult{}, err
	}

	var prepared []bonus.BillLine
	var rowErrors []bonus.RowError

	for _, row := range req.Rows {
		salesperson, err := s.employeeRepo.GetByName(ctx, row.SalespersonName)
		if err != nil {
			rowErrors = append(rowErrors, bonus.RowError{
				Ref:    row.Sequence,
				Reason: fmt.Sprintf("salesperson %q not found", row.SalespersonName),
			})
			continue
		}

		paidAt, ok := validator.IsValidDate(row.PaidAt)
		if !ok {
			rowErrors = append(rowErrors, bonus.RowError{Ref: row.Sequence, Reason: "unparseable paid_at"})
			continue
		}

		received, abnormal := parseReceived(row.Received)

		prepared = append(prepared, bonus.BillLine{
			ID:            uuid.NewString(),
			Sequence:      row.Sequence,
			Payer:         row.Payer,
			Worker:        row.Worker,
			ItemName:      row.ItemName,
			Receivable:    row.Receivable,
			Received:      received,
			Abnormal:      abnormal,
			PaidAt:        paidAt,
			SalespersonID: salesperson.ID,
		})
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.bonusRepo.UpsertBillLines(txCtx, prepared); err != nil {
			return fmt.Errorf("failed to insert bill lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return bonus.ImportResult{}, err
	}

	return bonus.ImportResult{Imported: len(prepared), Errors: rowErrors}, nil
}

// ReconcileMonth recomputes and overwrites the month's commission summaries
// from the payment history through the month's end.
func (s *BonusService) ReconcileMonth(ctx context.Context, req bonus.ReconcileRequest) ([]bonus.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	lines, err := s.bonusRepo.GetBillLinesPaidThrough(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load bill lines: %w", err)
	}

	commissions := Reconcile(lines, req.Year, req.Month)

	summaries := make([]bonus.MonthlySummary, 0, len(commissions))
	for employeeID, amount := range commissions {
		summaries = append(summaries, bonus.MonthlySummary{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Year:       req.Year,
			Month:      req.Month,
			Amount:     amount,
		})
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		if err := s.bonusRepo.ReplaceMonthlySummaries(txCtx, req.Year, req.Month, summaries); err != nil {
			return fmt.Errorf("failed to replace monthly summaries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]bonus.SummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, bonus.SummaryResponse{
			EmployeeID: summary.EmployeeID,
			Year:       summary.Year,
			Month:      summary.Month,
			Amount:     summary.Amount,
		})
	}

	return result, nil
}

// parseReceived interprets the raw received text. Thousands separators are
// tolerated; anything else non-numeric flags the line abnormal.
func parseReceived(raw string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, true
	}
	return amount, false
}
