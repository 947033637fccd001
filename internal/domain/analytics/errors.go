package analytics

import "errors"

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
