package payroll

import (
	"context"
	"sync"
	"time"

	"hrdesk/internal/platform/ids"
	"hrdesk/internal/platform/memstore"
)

type Store struct {
	mu       sync.RWMutex
	payslips []Payslip
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

func (s *Store) Seed(payslips []Payslip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payslips = append([]Payslip(nil), payslips...)
}

func (s *Store) List(ctx context.Context) ([]Payslip, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Payslip(nil), s.payslips...), nil
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Payslip
	for _, slip := range s.payslips {
		if slip.EmployeeID == employeeID {
			out = append(out, slip)
		}
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (Payslip, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Payslip{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, slip := range s.payslips {
		if slip.ID == id {
			return slip, nil
		}
	}
	return Payslip{}, memstore.NotFound("payslips", id)
}

func (s *Store) Create(ctx context.Context, slip Payslip) (Payslip, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Payslip{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	slip.ID = ids.New()
	s.payslips = append(s.payslips, slip)
	return slip, nil
}

func (s *Store) Update(ctx context.Context, id string, patch PayslipPatch) (Payslip, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Payslip{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payslips {
		if s.payslips[i].ID != id {
			continue
		}
		slip := &s.payslips[i]
		if patch.EmployeeID != nil {
			slip.EmployeeID = *patch.EmployeeID
		}
		if patch.EmployeeName != nil {
			slip.EmployeeName = *patch.EmployeeName
		}
		if patch.Month != nil {
			slip.Month = *patch.Month
		}
		if patch.Year != nil {
			slip.Year = *patch.Year
		}
		if patch.Earnings != nil {
			slip.Earnings = *patch.Earnings
		}
		if patch.Deductions != nil {
			slip.Deductions = *patch.Deductions
		}
		if patch.NetPay != nil {
			slip.NetPay = *patch.NetPay
		}
		if patch.Status != nil {
			slip.Status = *patch.Status
		}
		return *slip, nil
	}
	return Payslip{}, memstore.NotFound("payslips", id)
}
