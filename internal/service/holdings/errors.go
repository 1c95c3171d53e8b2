package holdings

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be a finite number")
	ErrPositionOutOfRange = errors.New("holding position out of range")
)
