package insurance

import "errors"

var (
	ErrNoVersionInForce = errors.New("no insurance grade table version in force")
	ErrInvalidType      = errors.New("invalid insurance type")
)
