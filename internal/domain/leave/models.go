package leave

type Type string

const (
	TypeAnnual   Type = "Annual"
	TypeSick     Type = "Sick"
	TypePersonal Type = "Personal"
	TypeOther    Type = "Other"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Request struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Type         Type   `json:"type"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Status       Status `json:"status"`
	Reason       string `json:"reason"`
}

type RequestPatch struct {
	EmployeeID   *string `json:"employeeId"`
	EmployeeName *string `json:"employeeName"`
	Type         *Type   `json:"type"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	Status       *Status `json:"status"`
	Reason       *string `json:"reason"`
}
