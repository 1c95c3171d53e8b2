package marketdata

import "errors"

var (
	ErrNetwork       = errors.New("market data: network error")
	ErrDecode        = errors.New("market data: unexpected response")
	ErrEmptyResponse = errors.New("market data: empty response")
	ErrUnsupported   = errors.New("market data: not supported by provider")
)
