package brand

import "errors"

var (
	ErrInvalidName     = errors.New("brand name is required")
	ErrInvalidPlanType = errors.New("invalid plan type")
	ErrIDAlreadySet    = errors.New("brand ID is already set")
	ErrZeroID          = errors.New("brand ID cannot be zero")
)
