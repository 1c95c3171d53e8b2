package httptransport

import (
	"log/slog"
	"math"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Router - то, что умеют и *echo.Echo, и *echo.Group
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Number - число в JSON. NaN и ±Inf выводятся как null, encoding/json их не принимает.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

func num(p *float64) *Number {
	if p == nil {
		return nil
	}
	n := Number(*p)
	return &n
}

// money - сумма для отображения, округлённая до копеек. "N/A", если значения нет.
func money(p *float64) string {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return "N/A"
	}
	return decimal.NewFromFloat(*p).StringFixed(2)
}

// writeError - переводит ошибку сервиса в HTTP-ответ
func writeError(c echo.Context, logger *slog.Logger, op string, err error) error {
	code := FromServiceError(err)
	status, msg := statusFor(code)
	if status >= 500 {
		logger.Error(op+" failed",
			slog.String("op", op),
			slog.String("code", string(code)),
			slog.String("error", err.Error()),
		)
	} else {
		logger.Debug(op+" rejected", slog.String("op", op), slog.String("error", err.Error()))
	}
	return c.JSON(status, echo.Map{
		"error": msg,
	})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(400, echo.Map{
		"error": msg,
	})
}
