package adapter

import (
	"context"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/bot"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/service/valuation"
)

// SnapshotSource - последний снимок оценки портфеля
type SnapshotSource interface {
	Current() (domain.Valuation, bool)
}

// TrendSource - построитель синтетического ряда
type TrendSource interface {
	Synthesize(total float64, n int) []domain.TrendPoint
}

// portfolioReader - адаптер, который превращает сервис оценки в интерфейс бота PortfolioReader.
type portfolioReader struct {
	snapshots SnapshotSource
	trend     TrendSource
}

// NewPortfolioReader - конструктор адаптера над сервисом оценки.
func NewPortfolioReader(snapshots SnapshotSource, trend TrendSource) bot.PortfolioReader {
	return portfolioReader{snapshots: snapshots, trend: trend}
}

// Valuation - текущий снимок или valuation.ErrNotLoaded, если цен ещё нет.
func (a portfolioReader) Valuation(_ context.Context) (domain.Valuation, error) {
	v, ok := a.snapshots.Current()
	if !ok {
		return domain.Valuation{}, valuation.ErrNotLoaded
	}
	return v, nil
}

// Trend - ряд от текущей стоимости портфеля и валюта снимка.
func (a portfolioReader) Trend(ctx context.Context, points int) ([]domain.TrendPoint, string, error) {
	v, err := a.Valuation(ctx)
	if err != nil {
		return nil, "", err
	}
	return a.trend.Synthesize(v.Total, points), v.Currency, nil
}
