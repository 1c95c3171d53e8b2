package bot

import (
	"errors"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/infra/marketdata"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/valuation"
)

func codeOf(err error) errcode.Code {
	switch {
	case errors.Is(err, valuation.ErrNotLoaded):
		return errcode.PricesNotLoaded
	case errors.Is(err, marketdata.ErrNetwork),
		errors.Is(err, marketdata.ErrDecode),
		errors.Is(err, marketdata.ErrEmptyResponse):
		return errcode.UpstreamUnavailable
	default:
		return errcode.Internal
	}
}

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.PricesNotLoaded:
		return "Цены ещё не загружены, попробуйте через минуту"
	case errcode.UpstreamUnavailable:
		return "Сервис курсов недоступен, попробуйте позже"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
