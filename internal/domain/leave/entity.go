package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeAnnual   LeaveType = "annual"
	LeaveTypePersonal LeaveType = "personal"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypeOfficial LeaveType = "official"
	LeaveTypeMarriage LeaveType = "marriage"
	LeaveTypeFuneral  LeaveType = "funeral"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Request - one imported leave request over [StartAt, EndAt). BillableHours
// is derived by the hour calculator and recomputed on every import; the
// imported value is never authoritative.
type Request struct {
	ID            string
	ExternalID    string
	EmployeeID    string
	Type          LeaveType
	Status        LeaveStatus
	StartAt       time.Time
	EndAt         time.Time
	BillableHours float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MonthlyTypeHours - approved hours per employee and leave type in a month.
type MonthlyTypeHours struct {
	EmployeeID string
	Type       LeaveType
	Hours      float64
}
