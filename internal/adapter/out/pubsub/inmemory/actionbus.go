package inmemory

import (
	"context"
	"sync"

	"learnql/internal/model"
	"learnql/pkg/metrics"
)

const defaultBuffer = 64

// ActionBus fans recorded actions out to the subscribers of their project.
// A subscriber whose buffer is full misses the action.
type ActionBus struct {
	mu sync.RWMutex
	// projectID -> subscriber channels
	subs map[int64]map[chan model.Action]struct{}
	buf  int
}

func New(buf int) *ActionBus {
	if buf <= 0 {
		buf = defaultBuffer
	}
	return &ActionBus{
		subs: make(map[int64]map[chan model.Action]struct{}),
		buf:  buf,
	}
}

// Subscribe registers a subscriber for projectID. The returned channel is
// closed once ctx is done.
func (b *ActionBus) Subscribe(ctx context.Context, projectID int64) (<-chan model.Action, error) {
	ch := make(chan model.Action, b.buf)

	b.mu.Lock()
	if b.subs[projectID] == nil {
		b.subs[projectID] = make(map[chan model.Action]struct{})
	}
	b.subs[projectID][ch] = struct{}{}
	b.mu.Unlock()
	metrics.Subscribers.Inc()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if set := b.subs[projectID]; set != nil {
			delete(set, ch)
			if len(set) == 0 {
				delete(b.subs, projectID)
			}
		}
		b.mu.Unlock()
		metrics.Subscribers.Dec()
		close(ch)
	}()

	return ch, nil
}

func (b *ActionBus) Publish(_ context.Context, projectID int64, a model.Action) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs[projectID] {
		select {
		case ch <- a:
			metrics.ActionsDelivered.Inc()
		default:
			metrics.ActionsDropped.Inc()
		}
	}
	return nil
}

// Subscribers reports how many subscribers projectID currently has.
func (b *ActionBus) Subscribers(projectID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[projectID])
}
