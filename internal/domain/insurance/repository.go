package insurance

import (
	"context"
	"time"
)

type GradeRepository interface {
	// GetVersionInForce returns all rows of the version with the latest
	// start_date <= asOf for the type, ordered by grade ascending. Returns
	// ErrNoVersionInForce when no version exists at or before asOf.
	GetVersionInForce(ctx context.Context, insuranceType InsuranceType, asOf time.Time) ([]GradeRow, error)

	// ReplaceVersion deletes and re-inserts the (type, startDate) version in
	// one transaction.
	ReplaceVersion(ctx context.Context, insuranceType InsuranceType, startDate time.Time, rows []GradeRow) error
}
