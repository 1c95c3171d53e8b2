package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-portfolio-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (r *countingRefresher) Refresh(context.Context) (domain.Valuation, error) {
	r.calls.Add(1)
	return domain.Valuation{}, r.err
}

func TestScheduler_RunsImmediatelyAndOnTick(t *testing.T) {
	r := &countingRefresher{}
	s := NewScheduler(r, 10*time.Millisecond, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_ErrorDoesNotStopLoop(t *testing.T) {
	r := &countingRefresher{err: errors.New("upstream down")}
	s := NewScheduler(r, 10*time.Millisecond, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	assert.Eventually(t, func() bool { return r.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_CanceledBeforeStart(t *testing.T) {
	r := &countingRefresher{}
	s := NewScheduler(r, time.Hour, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Start(ctx)

	assert.Zero(t, r.calls.Load())
}
