package leave

import (
	"context"
)

type LeaveRequestRepository interface {
	// UpsertByExternalID inserts or replaces the row keyed by external_id.
	UpsertByExternalID(ctx context.Context, request Request) (Request, error)

	GetByExternalID(ctx context.Context, externalID string) (Request, error)

	// GetApprovedHoursByMonth sums billable hours of approved requests whose
	// start timestamp falls in the month, grouped by employee and type.
	GetApprovedHoursByMonth(ctx context.Context, year, month int) ([]MonthlyTypeHours, error)

	ListByMonth(ctx context.Context, year, month int) ([]Request, error)
}
