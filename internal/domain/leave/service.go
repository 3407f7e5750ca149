package leave

import (
	"context"
	"errors"
)

var ErrInvalidState = errors.New("invalid state")

// Directory resolves employee names for the denormalized employeeName copy.
type Directory interface {
	GetEmployeeByID(ctx context.Context, id string) (name string, ok bool)
}

type Service struct {
	Store     *Store
	Directory Directory
}

func NewService(store *Store, directory Directory) *Service {
	return &Service{Store: store, Directory: directory}
}

func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.Store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Request, error) {
	return s.Store.Get(ctx, id)
}

// Create files a new request. The status is always Pending regardless of what
// the caller supplied, and an empty employeeName is resolved from the
// directory at creation time.
func (s *Service) Create(ctx context.Context, req Request) (Request, error) {
	req.Status = StatusPending
	if req.EmployeeName == "" && s.Directory != nil {
		if name, ok := s.Directory.GetEmployeeByID(ctx, req.EmployeeID); ok {
			req.EmployeeName = name
		}
	}
	return s.Store.Create(ctx, req)
}

func (s *Service) Update(ctx context.Context, id string, patch RequestPatch) (Request, error) {
	return s.Store.Update(ctx, id, patch)
}

func (s *Service) Approve(ctx context.Context, id string) (Request, error) {
	return s.Store.setStatus(ctx, id, StatusApproved)
}

func (s *Service) Reject(ctx context.Context, id string) (Request, error) {
	return s.Store.setStatus(ctx, id, StatusRejected)
}
