package httptransport

import (
	"errors"
	"net/http"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/holdings"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/market"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/valuation"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, marketdata.ErrNetwork):
		return errcode.UpstreamUnavailable
	case errors.Is(err, marketdata.ErrDecode):
		return errcode.UpstreamBadResponse
	case errors.Is(err, marketdata.ErrEmptyResponse):
		return errcode.UpstreamEmpty
	case errors.Is(err, marketdata.ErrUnsupported):
		return errcode.Unsupported
	case errors.Is(err, valuation.ErrNotLoaded):
		return errcode.PricesNotLoaded
	case errors.Is(err, holdings.ErrPositionOutOfRange):
		return errcode.NotFound
	case errors.Is(err, holdings.ErrInvalidAmount),
		errors.Is(err, market.ErrEmptyID):
		return errcode.BadRequest
	default:
		return errcode.Internal
	}
}

// statusFor - HTTP-статус и значение поля "error" для кода
func statusFor(code errcode.Code) (int, string) {
	switch code {
	case errcode.UpstreamUnavailable:
		return http.StatusBadGateway, "upstream_unavailable"
	case errcode.UpstreamBadResponse:
		return http.StatusBadGateway, "upstream_bad_response"
	case errcode.UpstreamEmpty:
		return http.StatusBadGateway, "upstream_empty_response"
	case errcode.Unsupported:
		return http.StatusNotImplemented, "not_supported_by_provider"
	case errcode.PricesNotLoaded:
		return http.StatusNotFound, "prices_not_loaded"
	case errcode.NotFound:
		return http.StatusNotFound, "not_found"
	case errcode.BadRequest:
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_server_error"
	}
}
