package salary

import "errors"

var (
	ErrRecordNotFound    = errors.New("salary record not found")
	ErrRecordFinal       = errors.New("salary record is final")
	ErrRecordNotFinal    = errors.New("salary record is not final")
	ErrItemNotFound      = errors.New("salary item not found")
	ErrItemNameExists    = errors.New("salary item name already exists")
	ErrItemReferenced    = errors.New("salary item is referenced by salary lines, disable it instead")
	ErrInvalidPeriod     = errors.New("invalid salary period")
	ErrCannotDeleteFinal = errors.New("cannot delete a final salary record")
	ErrInvalidItemKind   = errors.New("invalid salary item kind")
)
