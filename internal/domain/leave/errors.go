package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrUnknownLeaveType     = errors.New("unknown leave type")
)
