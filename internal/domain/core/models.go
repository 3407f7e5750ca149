package core

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

type EmployeeStatus string

const (
	StatusActive     EmployeeStatus = "Active"
	StatusOnLeave    EmployeeStatus = "On Leave"
	StatusTerminated EmployeeStatus = "Terminated"
)

type Employee struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Role            Role             `json:"role"`
	Department      string           `json:"department"`
	Position        string           `json:"position"`
	Status          EmployeeStatus   `json:"status"`
	JoiningDate     string           `json:"joiningDate"`
	Phone           string           `json:"phone"`
	ProfileImage    string           `json:"profileImage,omitempty"`
	SalaryStructure *SalaryStructure `json:"salaryStructure,omitempty"`
}

type SalaryStructure struct {
	Basic      float64         `json:"basic"`
	Allowances AllowanceBucket `json:"allowances"`
	Deductions DeductionBucket `json:"deductions"`
}

type AllowanceBucket struct {
	Housing   float64 `json:"housing"`
	Transport float64 `json:"transport"`
	Medical   float64 `json:"medical"`
	Other     float64 `json:"other"`
}

type DeductionBucket struct {
	Tax       float64 `json:"tax"`
	Insurance float64 `json:"insurance"`
	Other     float64 `json:"other"`
}

// EmployeePatch carries a shallow-merge update: only non-nil fields replace
// the stored value, and the id is never part of a patch.
type EmployeePatch struct {
	Name            *string          `json:"name"`
	Email           *string          `json:"email"`
	Role            *Role            `json:"role"`
	Department      *string          `json:"department"`
	Position        *string          `json:"position"`
	Status          *EmployeeStatus  `json:"status"`
	JoiningDate     *string          `json:"joiningDate"`
	Phone           *string          `json:"phone"`
	ProfileImage    *string          `json:"profileImage"`
	SalaryStructure *SalaryStructure `json:"salaryStructure"`
}

type Department struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	EmployeeCount int    `json:"employeeCount"`
}

type DepartmentPatch struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	EmployeeCount *int    `json:"employeeCount"`
}

// Position carries a permissions list for display purposes only; authorization
// is decided by Employee.Role, never by these strings.
type Position struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Department  string   `json:"department"`
	Permissions []string `json:"permissions"`
}
