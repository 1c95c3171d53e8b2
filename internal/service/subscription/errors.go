package subscription

import "errors"

var ErrInvalidInterval = errors.New("interval must be > 0")
