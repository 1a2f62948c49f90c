package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
	"github.com/lumina-hr/payroll-backend-go/internal/pkg/database"
)

type salaryItemRepositoryImpl struct {
	db *database.DB
}

func NewSalaryItemRepository(db *database.DB) salary.SalaryItemRepository {
	return &salaryItemRepositoryImpl{db: db}
}

// CreateItem implements salary.SalaryItemRepository.
func (s *salaryItemRepositoryImpl) CreateItem(ctx context.Context, item salary.ItemDefinition) (salary.ItemDefinition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO salary_items (id, name, kind, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, kind, is_active, created_at, updated_at
	`

	var created salary.ItemDefinition
	err := q.QueryRow(ctx, query, item.ID, item.Name, item.Kind, item.IsActive).Scan(
		&created.ID, &created.Name, &created.Kind, &created.IsActive,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return salary.ItemDefinition{}, fmt.Errorf("failed to create salary item: %w", err)
	}

	return created, nil
}

// GetItemByID implements salary.SalaryItemRepository.
func (s *salaryItemRepositoryImpl) GetItemByID(ctx context.Context, id string) (salary.ItemDefinition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, kind, is_active, created_at, updated_at
		FROM salary_items
		WHERE id = $1
	`

	var item salary.ItemDefinition
	err := q.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Kind, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.ItemDefinition{}, salary.ErrItemNotFound
		}
		return salary.ItemDefinition{}, fmt.Errorf("failed to get salary item %s: %w", id, err)
	}

	return item, nil
}

// GetItemByName implements salary.SalaryItemRepository.
func (s *salaryItemRepositoryImpl) GetItemByName(ctx context.Context, name string) (salary.ItemDefinition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, kind, is_active, created_at, updated_at
		FROM salary_items
		WHERE name = $1
	`

	var item salary.ItemDefinition
	err := q.QueryRow(ctx, query, name).Scan(
		&item.ID, &item.Name, &item.Kind, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.ItemDefinition{}, salary.ErrItemNotFound
		}
		return salary.ItemDefinition{}, fmt.Errorf("failed to get salary item %q: %w", name, err)
	}

	return item, nil
}

// ListItems implements salary.SalaryItemRepository.
func (s *salaryItemRepositoryImpl) ListItems(ctx context.Context, activeOnly bool) ([]salary.ItemDefinition, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, kind, is_active, created_at, updated_at
		FROM salary_items
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []salary.ItemDefinition
	for rows.Next() {
		var item salary.ItemDefinition
		err := rows.Scan(&item.ID, &item.Name, &item.Kind, &item.IsActive, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateItem implements salary.SalaryItemRepository.
func (s *salaryItemRepositoryImpl) UpdateItem(ctx context.Context, req salary.UpdateItemRequest) error {
	q := GetQuerier(ctx, s.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}

	if req.Name != nil {
		args = append(args, *req.Name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if req.IsActive != nil {
		args = append(args, *req.IsActive)
		setClauses = append(setClauses, fmt.Sprintf("is_active = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		UPDATE salary_items
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setClauses, ", "))

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return salary.ErrItemNotFound
		}
		return fmt.Errorf("failed to update salary item %s: %w", req.ID, err)
	}

	return nil
}

// IsItemReferenced implements salary.SalaryItemRepository.
func (s *salaryItemRepositoryImpl) IsItemReferenced(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM salary_lines WHERE item_id = $1
			UNION ALL
			SELECT 1 FROM employee_salary_items WHERE item_id = $1
		)
	`

	var referenced bool
	if err := q.QueryRow(ctx, query, id).Scan(&referenced); err != nil {
		return false, fmt.Errorf("failed to check salary item references: %w", err)
	}

	return referenced, nil
}

// DeleteItem implements salary.SalaryItemRepository.
func (s *salaryItemRepositoryImpl) DeleteItem(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	query := `DELETE FROM salary_items WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return salary.ErrItemNotFound
		}
		return fmt.Errorf("failed to delete salary item %s: %w", id, err)
	}

	return nil
}

// GetStandingItems implements salary.SalaryItemRepository.
func (s *salaryItemRepositoryImpl) GetStandingItems(ctx context.Context, year, month int) ([]salary.StandingItem, error) {
	q := GetQuerier(ctx, s.db)

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	query := `
		SELECT esi.id, esi.employee_id, esi.item_id, esi.amount, esi.start_date, esi.end_date,
			i.name, i.kind
		FROM employee_salary_items esi
		JOIN salary_items i ON i.id = esi.item_id
		WHERE esi.start_date <= $2
		  AND (esi.end_date IS NULL OR esi.end_date >= $1)
		  AND i.is_active = TRUE
		ORDER BY esi.employee_id, i.name
	`

	rows, err := q.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []salary.StandingItem
	for rows.Next() {
		var item salary.StandingItem
		err := rows.Scan(
			&item.ID, &item.EmployeeID, &item.ItemID, &item.Amount,
			&item.StartDate, &item.EndDate, &item.ItemName, &item.ItemKind,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
