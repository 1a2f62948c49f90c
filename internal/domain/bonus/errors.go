package bonus

import "errors"

var (
	ErrSummaryNotFound = errors.New("monthly bonus summary not found")
)
