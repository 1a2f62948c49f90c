package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/lumina-hr/payroll-backend-go/internal/domain/bonus"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
)

type bonusRepositoryImpl struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepositoryImpl{db: db}
}

// UpsertBillLines implements bonus.BonusRepository.
func (b *bonusRepositoryImpl) UpsertBillLines(ctx context.Context, lines []bonus.BillLine) error {
	q := GetQuerier(ctx, b.db)

	query := `
		INSERT INTO bonus_bill_lines (
			id, sequence, payer, worker, item_name, receivable, received,
			abnormal, paid_at, salesperson_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (sequence, payer, worker, item_name, paid_at) DO UPDATE SET
			receivable = EXCLUDED.receivable,
			received = EXCLUDED.received,
			abnormal = EXCLUDED.abnormal,
			salesperson_id = EXCLUDED.salesperson_id,
			updated_at = NOW()
	`

	for _, line := range lines {
		_, err := q.Exec(ctx, query,
			line.ID, line.Sequence, line.Payer, line.Worker, line.ItemName,
			line.Receivable, line.Received, line.Abnormal, line.PaidAt, line.SalespersonID,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert bill line %s: %w", line.Sequence, err)
		}
	}

	return nil
}

// GetBillLinesPaidThrough implements bonus.BonusRepository.
func (b *bonusRepositoryImpl) GetBillLinesPaidThrough(ctx context.Context, cutoff time.Time) ([]bonus.BillLine, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, sequence, payer, worker, item_name, receivable, received,
			abnormal, paid_at, salesperson_id, created_at, updated_at
		FROM bonus_bill_lines
		WHERE paid_at < $1
		ORDER BY paid_at
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []bonus.BillLine
	for rows.Next() {
		var line bonus.BillLine
		err := rows.Scan(
			&line.ID, &line.Sequence, &line.Payer, &line.Worker, &line.ItemName,
			&line.Receivable, &line.Received, &line.Abnormal, &line.PaidAt,
			&line.SalespersonID, &line.CreatedAt, &line.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReplaceMonthlySummaries implements bonus.BonusRepository.
func (b *bonusRepositoryImpl) ReplaceMonthlySummaries(ctx context.Context, year, month int, summaries []bonus.MonthlySummary) error {
	q := GetQuerier(ctx, b.db)

	deleteQuery := `
		DELETE FROM bonus_monthly_summaries
		WHERE year = $1 AND month = $2
	`
	if _, err := q.Exec(ctx, deleteQuery, year, month); err != nil {
		return fmt.Errorf("failed to delete monthly summaries: %w", err)
	}

	insertQuery := `
		INSERT INTO bonus_monthly_summaries (id, employee_id, year, month, amount)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, summary := range summaries {
		_, err := q.Exec(ctx, insertQuery,
			summary.ID, summary.EmployeeID, summary.Year, summary.Month, summary.Amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert monthly summary for %s: %w", summary.EmployeeID, err)
		}
	}

	return nil
}

// GetMonthlyBonusByEmployee implements bonus.BonusRepository.
func (b *bonusRepositoryImpl) GetMonthlyBonusByEmployee(ctx context.Context, year, month int) (map[string]bonus.MonthlySummary, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT id, employee_id, year, month, amount, created_at, updated_at
		FROM bonus_monthly_summaries
		WHERE year = $1 AND month = $2
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make(map[string]bonus.MonthlySummary)
	for rows.Next() {
		var summary bonus.MonthlySummary
		err := rows.Scan(
			&summary.ID, &summary.EmployeeID, &summary.Year, &summary.Month,
			&summary.Amount, &summary.CreatedAt, &summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		summaries[summary.EmployeeID] = summary
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
