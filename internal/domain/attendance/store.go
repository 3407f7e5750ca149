package attendance

import (
	"context"
	"sync"
	"time"

	"hrdesk/internal/platform/ids"
	"hrdesk/internal/platform/memstore"
)

type Store struct {
	mu      sync.RWMutex
	records []Record
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

func (s *Store) Seed(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]Record(nil), records...)
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.records...), nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Record
	for _, rec := range s.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Mark appends a new attendance record. Uniqueness per employee and date is
// an intended invariant but, as in the backing dataset, not enforced.
func (s *Store) Mark(ctx context.Context, rec Record) (Record, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = ids.New()
	s.records = append(s.records, rec)
	return rec, nil
}

func (s *Store) Update(ctx context.Context, id string, patch RecordPatch) (Record, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Record{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		rec := &s.records[i]
		if patch.EmployeeID != nil {
			rec.EmployeeID = *patch.EmployeeID
		}
		if patch.EmployeeName != nil {
			rec.EmployeeName = *patch.EmployeeName
		}
		if patch.Date != nil {
			rec.Date = *patch.Date
		}
		if patch.Status != nil {
			rec.Status = *patch.Status
		}
		if patch.CheckIn != nil {
			rec.CheckIn = *patch.CheckIn
		}
		if patch.CheckOut != nil {
			rec.CheckOut = *patch.CheckOut
		}
		return *rec, nil
	}
	return Record{}, memstore.NotFound("attendance", id)
}
