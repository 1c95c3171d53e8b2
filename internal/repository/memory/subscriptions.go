package memory

import (
	"context"
	"slices"
	"sync"
	"time"
)

type subscription struct {
	intervalMinutes int
	enabled         bool
	lastSentAt      *time.Time
}

// SubscriptionRepo - подписки на авторассылку в памяти процесса
type SubscriptionRepo struct {
	mu    sync.Mutex
	items map[int64]*subscription
}

func NewSubscriptionRepository() *SubscriptionRepo {
	return &SubscriptionRepo{items: make(map[int64]*subscription)}
}

// MarkEnabled - включает подписку и сбрасывает время последней отправки
func (r *SubscriptionRepo) MarkEnabled(_ context.Context, chatID int64, intervalMinutes int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[chatID] = &subscription{intervalMinutes: intervalMinutes, enabled: true}
	return nil
}

func (r *SubscriptionRepo) MarkDisabled(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.items[chatID]; ok {
		s.enabled = false
	}
	return nil
}

// FindDue - включённые чаты, у которых истёк интервал, по возрастанию chat_id
func (r *SubscriptionRepo) FindDue(_ context.Context, now time.Time) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []int64
	for id, s := range r.items {
		if !s.enabled {
			continue
		}
		if s.lastSentAt == nil || now.Sub(*s.lastSentAt) >= time.Duration(s.intervalMinutes)*time.Minute {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (r *SubscriptionRepo) MarkSent(_ context.Context, chatID int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.items[chatID]; ok {
		s.lastSentAt = &at
	}
	return nil
}
