// Package activity keeps a bounded feed of recent noteworthy events for the
// dashboard.
package activity

import (
	"sync"
	"time"

	"hrdesk/internal/platform/ids"
)

type Entry struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type Store struct {
	mu      sync.RWMutex
	entries []Entry
	limit   int
	now     func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore keeps at most limit entries, discarding the oldest.
func NewStore(limit int, opts ...Option) *Store {
	if limit <= 0 {
		limit = 50
	}
	s := &Store{limit: limit, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Record(eventType, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{
		ID:          ids.New(),
		Type:        eventType,
		Description: description,
		Timestamp:   s.now().UTC().Format(time.RFC3339),
	})
	if len(s.entries) > s.limit {
		s.entries = s.entries[len(s.entries)-s.limit:]
	}
}

// Recent returns entries newest first.
func (s *Store) Recent() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i])
	}
	return out
}
