// Package fixtures holds the demo dataset the server is seeded with at
// startup. Ids are plain ordinals so the records are easy to reference from
// the API by hand.
package fixtures

import (
	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/comms"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/domain/policy"
)

func Employees() []core.Employee {
	return []core.Employee{
		{
			ID: "1", Name: "John Anderson", Email: "john.anderson@company.com",
			Role: core.RoleAdmin, Department: "Executive", Position: "Chief Executive Officer",
			Status: core.StatusActive, JoiningDate: "2020-01-15", Phone: "+1 (555) 123-4567",
			SalaryStructure: &core.SalaryStructure{
				Basic:      15000,
				Allowances: core.AllowanceBucket{Housing: 3000, Transport: 1000, Medical: 500, Other: 500},
				Deductions: core.DeductionBucket{Tax: 3000, Insurance: 500, Other: 200},
			},
		},
		{
			ID: "2", Name: "Sarah Mitchell", Email: "sarah.mitchell@company.com",
			Role: core.RoleHR, Department: "Human Resources", Position: "HR Director",
			Status: core.StatusActive, JoiningDate: "2021-03-20", Phone: "+1 (555) 234-5678",
			SalaryStructure: &core.SalaryStructure{
				Basic:      10000,
				Allowances: core.AllowanceBucket{Housing: 2000, Transport: 800, Medical: 400, Other: 300},
				Deductions: core.DeductionBucket{Tax: 2000, Insurance: 400, Other: 150},
			},
		},
		{
			ID: "3", Name: "Michael Chen", Email: "michael.chen@company.com",
			Role: core.RoleManager, Department: "Engineering", Position: "Engineering Manager",
			Status: core.StatusActive, JoiningDate: "2021-06-10", Phone: "+1 (555) 345-6789",
			SalaryStructure: &core.SalaryStructure{
				Basic:      12000,
				Allowances: core.AllowanceBucket{Housing: 2500, Transport: 900, Medical: 450, Other: 350},
				Deductions: core.DeductionBucket{Tax: 2500, Insurance: 450, Other: 180},
			},
		},
		{
			ID: "4", Name: "Emily Rodriguez", Email: "emily.rodriguez@company.com",
			Role: core.RoleEmployee, Department: "Engineering", Position: "Senior Developer",
			Status: core.StatusActive, JoiningDate: "2022-01-05", Phone: "+1 (555) 456-7890",
			SalaryStructure: &core.SalaryStructure{
				Basic:      8000,
				Allowances: core.AllowanceBucket{Housing: 1500, Transport: 600, Medical: 300, Other: 200},
				Deductions: core.DeductionBucket{Tax: 1500, Insurance: 300, Other: 100},
			},
		},
		{
			ID: "5", Name: "David Kim", Email: "david.kim@company.com",
			Role: core.RoleEmployee, Department: "Marketing", Position: "Marketing Specialist",
			Status: core.StatusOnLeave, JoiningDate: "2022-04-15", Phone: "+1 (555) 567-8901",
			SalaryStructure: &core.SalaryStructure{
				Basic:      6000,
				Allowances: core.AllowanceBucket{Housing: 1200, Transport: 500, Medical: 250, Other: 150},
				Deductions: core.DeductionBucket{Tax: 1000, Insurance: 250, Other: 80},
			},
		},
		{
			ID: "6", Name: "Lisa Thompson", Email: "lisa.thompson@company.com",
			Role: core.RoleEmployee, Department: "Finance", Position: "Financial Analyst",
			Status: core.StatusActive, JoiningDate: "2022-07-20", Phone: "+1 (555) 678-9012",
			SalaryStructure: &core.SalaryStructure{
				Basic:      7000,
				Allowances: core.AllowanceBucket{Housing: 1400, Transport: 550, Medical: 280, Other: 170},
				Deductions: core.DeductionBucket{Tax: 1200, Insurance: 280, Other: 90},
			},
		},
		{
			ID: "7", Name: "James Wilson", Email: "james.wilson@company.com",
			Role: core.RoleManager, Department: "Sales", Position: "Sales Manager",
			Status: core.StatusActive, JoiningDate: "2021-09-01", Phone: "+1 (555) 789-0123",
			SalaryStructure: &core.SalaryStructure{
				Basic:      11000,
				Allowances: core.AllowanceBucket{Housing: 2200, Transport: 850, Medical: 420, Other: 330},
				Deductions: core.DeductionBucket{Tax: 2200, Insurance: 420, Other: 160},
			},
		},
		{
			ID: "8", Name: "Amanda Foster", Email: "amanda.foster@company.com",
			Role: core.RoleEmployee, Department: "Design", Position: "UI/UX Designer",
			Status: core.StatusTerminated, JoiningDate: "2021-11-15", Phone: "+1 (555) 890-1234",
			SalaryStructure: &core.SalaryStructure{
				Basic:      7500,
				Allowances: core.AllowanceBucket{Housing: 1500, Transport: 600, Medical: 300, Other: 200},
				Deductions: core.DeductionBucket{Tax: 1400, Insurance: 300, Other: 100},
			},
		},
	}
}

// Departments carry a headcount figure from the wider organization; it is
// not derived from the seeded employee list and CRUD does not maintain it.
func Departments() []core.Department {
	return []core.Department{
		{ID: "1", Name: "Executive", Description: "Executive leadership and strategic planning", EmployeeCount: 3},
		{ID: "2", Name: "Human Resources", Description: "Employee relations and talent management", EmployeeCount: 8},
		{ID: "3", Name: "Engineering", Description: "Product development and technical operations", EmployeeCount: 25},
		{ID: "4", Name: "Marketing", Description: "Brand management and growth initiatives", EmployeeCount: 12},
		{ID: "5", Name: "Finance", Description: "Financial planning and accounting", EmployeeCount: 10},
		{ID: "6", Name: "Sales", Description: "Revenue generation and client relations", EmployeeCount: 18},
		{ID: "7", Name: "Design", Description: "Product design and user experience", EmployeeCount: 8},
	}
}

func Positions() []core.Position {
	return []core.Position{
		{ID: "1", Title: "Chief Executive Officer", Department: "Executive", Permissions: []string{"all"}},
		{ID: "2", Title: "HR Director", Department: "Human Resources", Permissions: []string{"employees", "payroll", "policies"}},
		{ID: "3", Title: "Engineering Manager", Department: "Engineering", Permissions: []string{"employees.view", "attendance"}},
		{ID: "4", Title: "Senior Developer", Department: "Engineering", Permissions: []string{"attendance.self", "policies.view"}},
		{ID: "5", Title: "Marketing Specialist", Department: "Marketing", Permissions: []string{"attendance.self", "policies.view"}},
		{ID: "6", Title: "Financial Analyst", Department: "Finance", Permissions: []string{"payroll.view", "attendance.self"}},
		{ID: "7", Title: "Sales Manager", Department: "Sales", Permissions: []string{"employees.view", "attendance"}},
		{ID: "8", Title: "UI/UX Designer", Department: "Design", Permissions: []string{"attendance.self", "policies.view"}},
	}
}

func Attendance() []attendance.Record {
	return []attendance.Record{
		{ID: "1", EmployeeID: "1", EmployeeName: "John Anderson", Date: "2024-01-15", Status: attendance.StatusPresent, CheckIn: "08:45", CheckOut: "17:30"},
		{ID: "2", EmployeeID: "2", EmployeeName: "Sarah Mitchell", Date: "2024-01-15", Status: attendance.StatusPresent, CheckIn: "08:55", CheckOut: "17:15"},
		{ID: "3", EmployeeID: "3", EmployeeName: "Michael Chen", Date: "2024-01-15", Status: attendance.StatusLate, CheckIn: "09:30", CheckOut: "18:00"},
		{ID: "4", EmployeeID: "4", EmployeeName: "Emily Rodriguez", Date: "2024-01-15", Status: attendance.StatusPresent, CheckIn: "08:50", CheckOut: "17:20"},
		{ID: "5", EmployeeID: "5", EmployeeName: "David Kim", Date: "2024-01-15", Status: attendance.StatusAbsent},
		{ID: "6", EmployeeID: "6", EmployeeName: "Lisa Thompson", Date: "2024-01-15", Status: attendance.StatusPresent, CheckIn: "08:40", CheckOut: "17:10"},
		{ID: "7", EmployeeID: "7", EmployeeName: "James Wilson", Date: "2024-01-15", Status: attendance.StatusHalfDay, CheckIn: "08:45", CheckOut: "13:00"},
	}
}

func LeaveRequests() []leave.Request {
	return []leave.Request{
		{ID: "1", EmployeeID: "5", EmployeeName: "David Kim", Type: leave.TypeAnnual, StartDate: "2024-01-15", EndDate: "2024-01-20", Status: leave.StatusApproved, Reason: "Family vacation"},
		{ID: "2", EmployeeID: "4", EmployeeName: "Emily Rodriguez", Type: leave.TypeSick, StartDate: "2024-01-22", EndDate: "2024-01-23", Status: leave.StatusPending, Reason: "Medical appointment"},
		{ID: "3", EmployeeID: "6", EmployeeName: "Lisa Thompson", Type: leave.TypePersonal, StartDate: "2024-01-25", EndDate: "2024-01-25", Status: leave.StatusPending, Reason: "Personal errand"},
		{ID: "4", EmployeeID: "3", EmployeeName: "Michael Chen", Type: leave.TypeAnnual, StartDate: "2024-02-01", EndDate: "2024-02-05", Status: leave.StatusPending, Reason: "Travel plans"},
	}
}

func Policies() []policy.Policy {
	return []policy.Policy{
		{ID: "1", Title: "Code of Conduct", Content: "Professional behavior guidelines...", Category: "General", AssignedTo: []string{"all"}, CreatedAt: "2023-01-01", AcknowledgedBy: []string{"1", "2", "3", "4"}},
		{ID: "2", Title: "Remote Work Policy", Content: "Guidelines for remote work arrangements...", Category: "Work", AssignedTo: []string{"Engineering", "Design"}, CreatedAt: "2023-06-15", AcknowledgedBy: []string{"3", "4"}},
		{ID: "3", Title: "Leave Policy", Content: "Annual leave, sick leave, and other absences...", Category: "HR", AssignedTo: []string{"all"}, CreatedAt: "2023-01-01", AcknowledgedBy: []string{"1", "2", "3", "4", "5", "6"}},
		{ID: "4", Title: "Data Security", Content: "Information security and data protection...", Category: "Security", AssignedTo: []string{"all"}, CreatedAt: "2023-03-20", AcknowledgedBy: []string{"1", "2", "3"}},
	}
}

func Payslips() []payroll.Payslip {
	return []payroll.Payslip{
		{ID: "1", EmployeeID: "1", EmployeeName: "John Anderson", Month: 12, Year: 2023, Earnings: payroll.Earnings{Basic: 15000, Allowances: 5000, Bonus: 2000}, Deductions: payroll.Deductions{Tax: 3000, Insurance: 500, Other: 200}, NetPay: 18300, Status: payroll.StatusPaid},
		{ID: "2", EmployeeID: "2", EmployeeName: "Sarah Mitchell", Month: 12, Year: 2023, Earnings: payroll.Earnings{Basic: 10000, Allowances: 3500, Bonus: 1000}, Deductions: payroll.Deductions{Tax: 2000, Insurance: 400, Other: 150}, NetPay: 11950, Status: payroll.StatusPaid},
		{ID: "3", EmployeeID: "3", EmployeeName: "Michael Chen", Month: 12, Year: 2023, Earnings: payroll.Earnings{Basic: 12000, Allowances: 4200, Bonus: 1500}, Deductions: payroll.Deductions{Tax: 2500, Insurance: 450, Other: 180}, NetPay: 14570, Status: payroll.StatusPaid},
		{ID: "4", EmployeeID: "4", EmployeeName: "Emily Rodriguez", Month: 1, Year: 2024, Earnings: payroll.Earnings{Basic: 8000, Allowances: 2600, Bonus: 0}, Deductions: payroll.Deductions{Tax: 1500, Insurance: 300, Other: 100}, NetPay: 8700, Status: payroll.StatusPending},
		{ID: "5", EmployeeID: "5", EmployeeName: "David Kim", Month: 1, Year: 2024, Earnings: payroll.Earnings{Basic: 6000, Allowances: 2100, Bonus: 0}, Deductions: payroll.Deductions{Tax: 1000, Insurance: 250, Other: 80}, NetPay: 6770, Status: payroll.StatusProcessing},
	}
}

func CommunicationLogs() []comms.Log {
	return []comms.Log{
		{ID: "1", Type: comms.ChannelEmail, Recipients: []string{"all"}, Message: "Monthly newsletter - January 2024", Subject: "Company Newsletter - January", Status: comms.StatusSent, Timestamp: "2024-01-05T10:30:00Z"},
		{ID: "2", Type: comms.ChannelWhatsApp, Recipients: []string{"Engineering"}, Message: "Team meeting reminder for tomorrow at 10 AM", Status: comms.StatusSent, Timestamp: "2024-01-14T16:00:00Z"},
		{ID: "3", Type: comms.ChannelEmail, Recipients: []string{"john.anderson@company.com"}, Message: "Your leave request has been approved", Subject: "Leave Request Approved", Status: comms.StatusSent, Timestamp: "2024-01-10T09:15:00Z"},
		{ID: "4", Type: comms.ChannelWhatsApp, Recipients: []string{"Sales"}, Message: "Q1 targets have been updated. Check your dashboard.", Status: comms.StatusFailed, Timestamp: "2024-01-12T11:00:00Z"},
	}
}
