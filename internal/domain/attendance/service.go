package attendance

import "context"

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

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.Store.List(ctx)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	return s.Store.ListByEmployee(ctx, employeeID)
}

// Mark resolves an empty employeeName from the directory at creation time;
// the stored copy is never updated on rename.
func (s *Service) Mark(ctx context.Context, rec Record) (Record, error) {
	if rec.EmployeeName == "" && s.Directory != nil {
		if name, ok := s.Directory.GetEmployeeByID(ctx, rec.EmployeeID); ok {
			rec.EmployeeName = name
		}
	}
	return s.Store.Mark(ctx, rec)
}

func (s *Service) Update(ctx context.Context, id string, patch RecordPatch) (Record, error) {
	return s.Store.Update(ctx, id, patch)
}
