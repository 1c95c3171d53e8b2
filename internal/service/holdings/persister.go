package holdings

import (
	"context"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
)

// Persister - слушатель, сохраняющий снимок портфеля в репозиторий.
// Ошибка записи только логируется: изменение в памяти уже произошло.
type Persister struct {
	repo   Repository
	logger *slog.Logger
}

func NewPersister(repo Repository, logger *slog.Logger) *Persister {
	return &Persister{repo: repo, logger: logger}
}

func (p *Persister) HoldingsChanged(ctx context.Context, items []domain.Holding) {
	if err := p.repo.Save(ctx, items); err != nil {
		p.logger.Error("save holdings failed", slog.Int("count", len(items)), slog.Any("err", err))
		return
	}
	p.logger.Debug("holdings saved", slog.Int("count", len(items)))
}
