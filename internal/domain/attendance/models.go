package attendance

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
)

// Record is one employee's attendance for one date. The employeeName is a
// denormalized copy taken at creation time and is not updated on rename.
type Record struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
	Status       Status `json:"status"`
	CheckIn      string `json:"checkIn,omitempty"`
	CheckOut     string `json:"checkOut,omitempty"`
}

type RecordPatch struct {
	EmployeeID   *string `json:"employeeId"`
	EmployeeName *string `json:"employeeName"`
	Date         *string `json:"date"`
	Status       *Status `json:"status"`
	CheckIn      *string `json:"checkIn"`
	CheckOut     *string `json:"checkOut"`
}
