package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNoData        = errors.New("no data")
	ErrEmptyQueries  = errors.New("empty query list")
	ErrTokenMissing  = errors.New("token missing")
)
