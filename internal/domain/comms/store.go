package comms

import (
	"context"
	"sync"
	"time"

	"hrdesk/internal/platform/ids"
	"hrdesk/internal/platform/memstore"
)

type Store struct {
	mu      sync.RWMutex
	logs    []Log
	latency time.Duration
}

type StoreOption func(*Store)

func WithLatency(d time.Duration) StoreOption {
	return func(s *Store) { s.latency = d }
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Seed(logs []Log) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append([]Log(nil), logs...)
}

// Append records an entry; the log is append-only.
func (s *Store) Append(ctx context.Context, entry Log) (Log, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Log{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = ids.New()
	s.logs = append(s.logs, entry)
	return entry, nil
}

// List returns the log, optionally filtered to one channel.
func (s *Store) List(ctx context.Context, channel Channel) ([]Log, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if channel == "" {
		return append([]Log(nil), s.logs...), nil
	}
	var out []Log
	for _, entry := range s.logs {
		if entry.Type == channel {
			out = append(out, entry)
		}
	}
	return out, nil
}
