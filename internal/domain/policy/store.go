package policy

import (
	"context"
	"slices"
	"sync"
	"time"

	"hrdesk/internal/platform/ids"
	"hrdesk/internal/platform/memstore"
)

type Store struct {
	mu       sync.RWMutex
	policies []Policy
	latency  time.Duration
	now      func() time.Time
}

type StoreOption func(*Store)

func WithLatency(d time.Duration) StoreOption {
	return func(s *Store) { s.latency = d }
}

// WithClock overrides the creation timestamp source, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Seed(policies []Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies = append([]Policy(nil), policies...)
}

func (s *Store) List(ctx context.Context) ([]Policy, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Policy(nil), s.policies...), nil
}

func (s *Store) Get(ctx context.Context, id string) (Policy, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Policy{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.policies {
		if p.ID == id {
			return p, nil
		}
	}
	return Policy{}, memstore.NotFound("policies", id)
}

// Create stamps createdAt and starts with no acknowledgments, whatever the
// caller supplied.
func (s *Store) Create(ctx context.Context, p Policy) (Policy, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Policy{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = ids.New()
	p.CreatedAt = s.now().Format("2006-01-02")
	p.AcknowledgedBy = []string{}
	s.policies = append(s.policies, p)
	return p, nil
}

func (s *Store) Update(ctx context.Context, id string, patch Patch) (Policy, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Policy{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.policies {
		if s.policies[i].ID != id {
			continue
		}
		p := &s.policies[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.AssignedTo != nil {
			p.AssignedTo = append([]string(nil), (*patch.AssignedTo)...)
		}
		return *p, nil
	}
	return Policy{}, memstore.NotFound("policies", id)
}

func (s *Store) Delete(ctx context.Context, id string) (Policy, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Policy{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.policies {
		if p.ID == id {
			s.policies = append(s.policies[:i], s.policies[i+1:]...)
			return p, nil
		}
	}
	return Policy{}, memstore.NotFound("policies", id)
}

// Acknowledge appends the user to acknowledgedBy. Acknowledging twice is a
// no-op.
func (s *Store) Acknowledge(ctx context.Context, id, userID string) (Policy, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Policy{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.policies {
		if s.policies[i].ID != id {
			continue
		}
		if !slices.Contains(s.policies[i].AcknowledgedBy, userID) {
			s.policies[i].AcknowledgedBy = append(s.policies[i].AcknowledgedBy, userID)
		}
		return s.policies[i], nil
	}
	return Policy{}, memstore.NotFound("policies", id)
}
