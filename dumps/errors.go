package dumps

import "errors"

var (
	ErrInvalidPattern = errors.New("Invalid include pattern")
)
