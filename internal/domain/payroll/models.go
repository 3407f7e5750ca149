package payroll

type Status string

const (
	StatusPaid       Status = "Paid"
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
)

type Earnings struct {
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Bonus      float64 `json:"bonus"`
}

type Deductions struct {
	Tax       float64 `json:"tax"`
	Insurance float64 `json:"insurance"`
	Other     float64 `json:"other"`
}

// Payslip stores netPay as written; it is not re-derived from the earnings
// and deduction buckets and may drift from them.
type Payslip struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	Month        int        `json:"month"`
	Year         int        `json:"year"`
	Earnings     Earnings   `json:"earnings"`
	Deductions   Deductions `json:"deductions"`
	NetPay       float64    `json:"netPay"`
	Status       Status     `json:"status"`
}

type PayslipPatch struct {
	EmployeeID   *string     `json:"employeeId"`
	EmployeeName *string     `json:"employeeName"`
	Month        *int        `json:"month"`
	Year         *int        `json:"year"`
	Earnings     *Earnings   `json:"earnings"`
	Deductions   *Deductions `json:"deductions"`
	NetPay       *float64    `json:"netPay"`
	Status       *Status     `json:"status"`
}

// ProcessRequest selects which employees a payroll run covers; an empty list
// means everyone with a payslip on file.
type ProcessRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
	Month       int      `json:"month"`
	Year        int      `json:"year"`
}

type ProcessResult struct {
	Processed int    `json:"processed"`
	Message   string `json:"message"`
}
