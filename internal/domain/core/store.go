package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"hrdesk/internal/platform/ids"
	"hrdesk/internal/platform/memstore"
)

// Store owns the employee, department and position collections. All access
// goes through its methods; nothing else mutates the slices.
type Store struct {
	mu          sync.RWMutex
	employees   []Employee
	departments []Department
	positions   []Position
	latency     time.Duration
}

type StoreOption func(*Store)

// WithLatency makes every operation wait before touching the collection,
// standing in for request/response timing.
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

// Seed replaces the collections with copies of the given fixtures.
func (s *Store) Seed(employees []Employee, departments []Department, positions []Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append([]Employee(nil), employees...)
	s.departments = append([]Department(nil), departments...)
	s.positions = append([]Position(nil), positions...)
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Employee(nil), s.employees...), nil
}

func (s *Store) GetEmployee(ctx context.Context, id string) (Employee, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Employee{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return Employee{}, memstore.NotFound("employees", id)
}

// GetEmployeeByEmail performs an exact email match; it backs login.
func (s *Store) GetEmployeeByEmail(ctx context.Context, email string) (Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, emp := range s.employees {
		if emp.Email == email {
			return emp, true
		}
	}
	return Employee{}, false
}

// GetEmployeeByID resolves an employee id to a display name, for callers
// that denormalize names into their own records.
func (s *Store) GetEmployeeByID(ctx context.Context, id string) (string, bool) {
	emp, err := s.GetEmployee(ctx, id)
	if err != nil {
		return "", false
	}
	return emp.Name, true
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Employee{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	emp.ID = ids.New()
	s.employees = append(s.employees, emp)
	return emp, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id string, patch EmployeePatch) (Employee, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Employee{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.employees {
		if s.employees[i].ID != id {
			continue
		}
		emp := &s.employees[i]
		if patch.Name != nil {
			emp.Name = *patch.Name
		}
		if patch.Email != nil {
			emp.Email = *patch.Email
		}
		if patch.Role != nil {
			emp.Role = *patch.Role
		}
		if patch.Department != nil {
			emp.Department = *patch.Department
		}
		if patch.Position != nil {
			emp.Position = *patch.Position
		}
		if patch.Status != nil {
			emp.Status = *patch.Status
		}
		if patch.JoiningDate != nil {
			emp.JoiningDate = *patch.JoiningDate
		}
		if patch.Phone != nil {
			emp.Phone = *patch.Phone
		}
		if patch.ProfileImage != nil {
			emp.ProfileImage = *patch.ProfileImage
		}
		if patch.SalaryStructure != nil {
			structure := *patch.SalaryStructure
			emp.SalaryStructure = &structure
		}
		return *emp, nil
	}
	return Employee{}, memstore.NotFound("employees", id)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) (Employee, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Employee{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, emp := range s.employees {
		if emp.ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return emp, nil
		}
	}
	return Employee{}, memstore.NotFound("employees", id)
}

// SearchEmployees matches the query case-insensitively against name, email
// and department.
func (s *Store) SearchEmployees(ctx context.Context, query string) ([]Employee, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Employee
	for _, emp := range s.employees {
		if strings.Contains(strings.ToLower(emp.Name), needle) ||
			strings.Contains(strings.ToLower(emp.Email), needle) ||
			strings.Contains(strings.ToLower(emp.Department), needle) {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Department(nil), s.departments...), nil
}

func (s *Store) GetDepartment(ctx context.Context, id string) (Department, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Department{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, dept := range s.departments {
		if dept.ID == id {
			return dept, nil
		}
	}
	return Department{}, memstore.NotFound("departments", id)
}

func (s *Store) CreateDepartment(ctx context.Context, dept Department) (Department, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Department{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	dept.ID = ids.New()
	s.departments = append(s.departments, dept)
	return dept, nil
}

func (s *Store) UpdateDepartment(ctx context.Context, id string, patch DepartmentPatch) (Department, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Department{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.departments {
		if s.departments[i].ID != id {
			continue
		}
		dept := &s.departments[i]
		if patch.Name != nil {
			dept.Name = *patch.Name
		}
		if patch.Description != nil {
			dept.Description = *patch.Description
		}
		if patch.EmployeeCount != nil {
			dept.EmployeeCount = *patch.EmployeeCount
		}
		return *dept, nil
	}
	return Department{}, memstore.NotFound("departments", id)
}

func (s *Store) DeleteDepartment(ctx context.Context, id string) (Department, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return Department{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, dept := range s.departments {
		if dept.ID == id {
			s.departments = append(s.departments[:i], s.departments[i+1:]...)
			return dept, nil
		}
	}
	return Department{}, memstore.NotFound("departments", id)
}

func (s *Store) ListPositions(ctx context.Context) ([]Position, error) {
	if err := memstore.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Position(nil), s.positions...), nil
}
