package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSalaryBaseNotFound = errors.New("no salary base history in force for employee")
)
