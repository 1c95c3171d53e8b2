// Package sharedstate - маленькое key-value хранилище, общее для сервиса
// и внешней поверхности отображения (бот, виджет).
package sharedstate

import (
	"context"
	"sync"
)

// Store - порт общего хранилища числовых значений
type Store interface {
	SetFloat(ctx context.Context, key string, value float64) error
	Float(ctx context.Context, key string) (value float64, ok bool, err error)
}

// Memory - реализация в памяти процесса, значения разделены по suite
type Memory struct {
	mu     sync.RWMutex
	suite  string
	values map[string]float64
}

func NewMemory(suite string) *Memory {
	return &Memory{suite: suite, values: make(map[string]float64)}
}

func (m *Memory) SetFloat(_ context.Context, key string, value float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[m.suite+"/"+key] = value
	return nil
}

func (m *Memory) Float(_ context.Context, key string) (float64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[m.suite+"/"+key]
	return v, ok, nil
}
