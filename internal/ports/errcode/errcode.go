package errcode

type Code string

const (
	UpstreamUnavailable Code = "UPSTREAM_UNAVAILABLE"
	UpstreamBadResponse Code = "UPSTREAM_BAD_RESPONSE"
	UpstreamEmpty       Code = "UPSTREAM_EMPTY_RESPONSE"
	Unsupported         Code = "UNSUPPORTED"

	PricesNotLoaded Code = "PRICES_NOT_LOADED"
	NotFound        Code = "NOT_FOUND"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
