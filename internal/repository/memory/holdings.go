package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
)

// HoldingRepo - хранение позиций в памяти процесса (backend по умолчанию)
type HoldingRepo struct {
	mu    sync.RWMutex
	items []domain.Holding
}

func NewHoldingRepository() *HoldingRepo {
	return &HoldingRepo{}
}

func (r *HoldingRepo) Load(_ context.Context) ([]domain.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *HoldingRepo) Save(_ context.Context, items []domain.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.Clone(items)
	return nil
}
