package salary

import (
	"context"
)

type SalaryRepository interface {
	GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	ListByPeriod(ctx context.Context, year, month int) ([]Record, error)

	// CreateRecord inserts a new draft header.
	CreateRecord(ctx context.Context, record Record) (Record, error)

	// ReplaceLines deletes and re-inserts every line of the record.
	ReplaceLines(ctx context.Context, recordID string, lines []Line) error

	// UpsertLine inserts or replaces a single (record, item) line.
	UpsertLine(ctx context.Context, recordID, itemID string, line Line) error

	GetLines(ctx context.Context, recordID string) ([]Line, error)

	// UpdateDraftTotals writes the computed totals, guarded on status still
	// being draft. Returns ErrRecordFinal when the guard rejects the write.
	UpdateDraftTotals(ctx context.Context, record Record) error

	// SetStatus transitions the record between draft and final, guarded on
	// the expected current status. Returns ErrRecordNotFound when the guard
	// does not match any row.
	SetStatus(ctx context.Context, id string, from, to Status) error

	// DeleteDraft removes a draft record and its lines. Returns
	// ErrCannotDeleteFinal for final records.
	DeleteDraft(ctx context.Context, id string) error
}

type SalaryItemRepository interface {
	CreateItem(ctx context.Context, item ItemDefinition) (ItemDefinition, error)
	GetItemByID(ctx context.Context, id string) (ItemDefinition, error)
	GetItemByName(ctx context.Context, name string) (ItemDefinition, error)
	ListItems(ctx context.Context, activeOnly bool) ([]ItemDefinition, error)
	UpdateItem(ctx context.Context, req UpdateItemRequest) error

	// IsItemReferenced reports whether any salary line references the item.
	IsItemReferenced(ctx context.Context, id string) (bool, error)

	// DeleteItem hard-deletes an item. Callers must check IsItemReferenced
	// first; referenced items are soft-disabled instead.
	DeleteItem(ctx context.Context, id string) error

	// GetStandingItems returns employee_salary_item settings effective in the
	// month, joined with their item definition.
	GetStandingItems(ctx context.Context, year, month int) ([]StandingItem, error)
}
