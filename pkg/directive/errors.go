package directive

import "errors"

// Sentinel errors for catalog construction.
var (
	ErrInvalidName   = errors.New("directive: invalid name")
	ErrDuplicateName = errors.New("directive: duplicate name")
	ErrInvalidFile   = errors.New("directive: invalid catalog file")
)
