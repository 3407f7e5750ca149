package leave

import (
	"context"
	"sync"
	"time"

	"hrdesk/internal/platform/ids"
	"hrdesk/internal/platform/memstore"
)

type Store struct {
	mu       sync.RWMutex
	requests []Request
	latency  time.Duration
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

func (s *Store) Seed(requests []Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append([]Request(nil), requests...)
}

func (s *Store) List(ctx context.Context) ([]Request, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Request(nil), s.requests...), nil
}

func (s *Store) Get(ctx context.Context, id string) (Request, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Request{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, req := range s.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return Request{}, memstore.NotFound("leave requests", id)
}

func (s *Store) Create(ctx context.Context, req Request) (Request, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Request{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	req.ID = ids.New()
	s.requests = append(s.requests, req)
	return req, nil
}

func (s *Store) Update(ctx context.Context, id string, patch RequestPatch) (Request, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Request{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		req := &s.requests[i]
		if patch.EmployeeID != nil {
			req.EmployeeID = *patch.EmployeeID
		}
		if patch.EmployeeName != nil {
			req.EmployeeName = *patch.EmployeeName
		}
		if patch.Type != nil {
			req.Type = *patch.Type
		}
		if patch.StartDate != nil {
			req.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			req.EndDate = *patch.EndDate
		}
		if patch.Status != nil {
			req.Status = *patch.Status
		}
		if patch.Reason != nil {
			req.Reason = *patch.Reason
		}
		return *req, nil
	}
	return Request{}, memstore.NotFound("leave requests", id)
}

// setStatus is the compare-and-set behind approve/reject: the transition is
// only legal from Pending.
func (s *Store) setStatus(ctx context.Context, id string, status Status) (Request, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Request{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		if s.requests[i].Status != StatusPending {
			return Request{}, ErrInvalidState
		}
		s.requests[i].Status = status
		return s.requests[i], nil
	}
	return Request{}, memstore.NotFound("leave requests", id)
}
