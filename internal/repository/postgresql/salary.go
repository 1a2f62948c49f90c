package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryRecordColumns = `
	r.id, r.employee_id, r.year, r.month, r.status,
	r.total_payable, r.total_deduction, r.net, r.bank_transfer, r.cash, r.employer_pension,
	r.created_at, r.updated_at, e.full_name
`

func scanRecord(row pgx.Row) (salary.Record, error) {
	var record salary.Record
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Year, &record.Month, &record.Status,
		&record.TotalPayable, &record.TotalDeduction, &record.Net,
		&record.BankTransfer, &record.Cash, &record.EmployerPension,
		&record.CreatedAt, &record.UpdatedAt, &record.EmployeeName,
	)
	return record, err
}

// GetByEmployeePeriod implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (salary.Record, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salaryRecordColumns + `
		FROM salary_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.employee_id = $1 AND r.year = $2 AND r.month = $3
	`

	record, err := scanRecord(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Record{}, salary.ErrRecordNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return record, nil
}

// GetByID implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Record, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salaryRecordColumns + `
		FROM salary_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	record, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.Record{}, salary.ErrRecordNotFound
		}
		return salary.Record{}, fmt.Errorf("failed to get salary record %s: %w", id, err)
	}

	return record, nil
}

// ListByPeriod implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) ListByPeriod(ctx context.Context, year, month int) ([]salary.Record, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salaryRecordColumns + `
		FROM salary_records r
		JOIN employees e ON e.id = r.employee_id
		WHERE r.year = $1 AND r.month = $2
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []salary.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CreateRecord implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) CreateRecord(ctx context.Context, record salary.Record) (salary.Record, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salary_records (
			id, employee_id, year, month, status,
			total_payable, total_deduction, net, bank_transfer, cash, employer_pension
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, employee_id, year, month, status,
			total_payable, total_deduction, net, bank_transfer, cash, employer_pension,
			created_at, updated_at
	`

	var created salary.Record
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Year, record.Month, record.Status,
		record.TotalPayable, record.TotalDeduction, record.Net,
		record.BankTransfer, record.Cash, record.EmployerPension,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Year, &created.Month, &created.Status,
		&created.TotalPayable, &created.TotalDeduction, &created.Net,
		&created.BankTransfer, &created.Cash, &created.EmployerPension,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return salary.Record{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return created, nil
}

// ReplaceLines implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) ReplaceLines(ctx context.Context, recordID string, lines []salary.Line) error {
	q := GetQuerier(ctx, s.db)

	deleteQuery := `DELETE FROM salary_lines WHERE record_id = $1`
	if _, err := q.Exec(ctx, deleteQuery, recordID); err != nil {
		return fmt.Errorf("failed to delete salary lines: %w", err)
	}

	insertQuery := `
		INSERT INTO salary_lines (id, record_id, item_id, amount)
		VALUES ($1, $2, $3, $4)
	`
	for _, line := range lines {
		if _, err := q.Exec(ctx, insertQuery, line.ID, recordID, line.ItemID, line.Amount); err != nil {
			return fmt.Errorf("failed to insert salary line: %w", err)
		}
	}

	return nil
}

// UpsertLine implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) UpsertLine(ctx context.Context, recordID, itemID string, line salary.Line) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salary_lines (id, record_id, item_id, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (record_id, item_id) DO UPDATE SET
			amount = EXCLUDED.amount
	`

	if _, err := q.Exec(ctx, query, line.ID, recordID, itemID, line.Amount); err != nil {
		return fmt.Errorf("failed to upsert salary line: %w", err)
	}

	return nil
}

// GetLines implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) GetLines(ctx context.Context, recordID string) ([]salary.Line, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT l.id, l.record_id, l.item_id, l.amount, i.name, i.kind
		FROM salary_lines l
		JOIN salary_items i ON i.id = l.item_id
		WHERE l.record_id = $1
		ORDER BY i.kind, i.name
	`

	rows, err := q.Query(ctx, query, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []salary.Line
	for rows.Next() {
		var line salary.Line
		err := rows.Scan(&line.ID, &line.RecordID, &line.ItemID, &line.Amount, &line.ItemName, &line.ItemKind)
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

// UpdateDraftTotals implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) UpdateDraftTotals(ctx context.Context, record salary.Record) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE salary_records
		SET total_payable = $2, total_deduction = $3, net = $4,
			bank_transfer = $5, cash = $6, employer_pension = $7, updated_at = NOW()
		WHERE id = $1 AND status = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.ID, record.TotalPayable, record.TotalDeduction, record.Net,
		record.BankTransfer, record.Cash, record.EmployerPension, salary.StatusDraft,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.ErrRecordFinal
		}
		return fmt.Errorf("failed to update salary record totals: %w", err)
	}

	return nil
}

// SetStatus implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) SetStatus(ctx context.Context, id string, from, to salary.Status) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE salary_records
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, from, to).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.ErrRecordNotFound
		}
		return fmt.Errorf("failed to set salary record status: %w", err)
	}

	return nil
}

// DeleteDraft implements salary.SalaryRepository.
func (s *salaryRepositoryImpl) DeleteDraft(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	statusQuery := `SELECT status FROM salary_records WHERE id = $1`

	var status salary.Status
	if err := q.QueryRow(ctx, statusQuery, id).Scan(&status); err != nil {
		if err == pgx.ErrNoRows {
			return salary.ErrRecordNotFound
		}
		return fmt.Errorf("failed to get salary record %s: %w", id, err)
	}
	if status == salary.StatusFinal {
		return salary.ErrCannotDeleteFinal
	}

	if _, err := q.Exec(ctx, `DELETE FROM salary_lines WHERE record_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete salary lines: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM salary_records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}

	return nil
}
