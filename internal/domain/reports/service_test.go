package reports

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/payroll"
)

func newService() *Service {
	directory := core.NewStore()
	directory.Seed(nil, []core.Department{
		{ID: "1", Name: "Engineering", Description: "Product development", EmployeeCount: 25},
		{ID: "2", Name: "Sales", Description: "Revenue generation", EmployeeCount: 18},
	}, nil)

	att := attendance.NewStore()
	att.Seed([]attendance.Record{
		{ID: "1", Status: attendance.StatusPresent},
		{ID: "2", Status: attendance.StatusPresent},
		{ID: "3", Status: attendance.StatusAbsent},
		{ID: "4", Status: attendance.StatusLate},
	})

	pay := payroll.NewStore()
	pay.Seed([]payroll.Payslip{
		{ID: "1", Month: 12, Year: 2023, Earnings: payroll.Earnings{Basic: 15000, Allowances: 5000, Bonus: 2000}, Deductions: payroll.Deductions{Tax: 3000, Insurance: 500, Other: 200}, NetPay: 18300},
		{ID: "2", Month: 1, Year: 2024, Earnings: payroll.Earnings{Basic: 8000, Allowances: 2600}, Deductions: payroll.Deductions{Tax: 1500, Insurance: 300, Other: 100}, NetPay: 8700},
		{ID: "3", Month: 1, Year: 2024, Earnings: payroll.Earnings{Basic: 6000, Allowances: 2100}, Deductions: payroll.Deductions{Tax: 1000, Insurance: 250, Other: 80}, NetPay: 6770},
	})

	return NewService(directory, att, pay)
}

func TestPayrollReport(t *testing.T) {
	svc := newService()
	rows, err := svc.PayrollReport(context.Background())
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 months, got %d", len(rows))
	}
	dec := rows[0]
	if dec.Month != "Dec" || dec.Year != 2023 || dec.Gross != 22000 || dec.Deductions != 3700 || dec.Net != 18300 || dec.Payslips != 1 {
		t.Fatalf("unexpected December row: %+v", dec)
	}
	jan := rows[1]
	if jan.Payslips != 2 || jan.Net != 15470 {
		t.Fatalf("unexpected January row: %+v", jan)
	}
}

func TestAttendanceReport(t *testing.T) {
	svc := newService()
	summary, err := svc.AttendanceReport(context.Background())
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	want := AttendanceSummary{Total: 4, Present: 2, Absent: 1, Late: 1}
	if summary != want {
		t.Fatalf("summary = %+v, want %+v", summary, want)
	}
}

func TestExportCSV(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	tests := []struct {
		report     string
		wantHeader string
		wantLines  int
	}{
		{report: "payroll", wantHeader: "month,year,gross,deductions,net,payslips", wantLines: 3},
		{report: "attendance", wantHeader: "total,present,absent,late,halfDay", wantLines: 2},
		{report: "departments", wantHeader: "name,description,employeeCount", wantLines: 3},
	}

	for _, tc := range tests {
		t.Run(tc.report, func(t *testing.T) {
			out, err := svc.ExportCSV(ctx, tc.report)
			if err != nil {
				t.Fatalf("export failed: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(string(out)), "\n")
			if lines[0] != tc.wantHeader {
				t.Fatalf("unexpected header: %q", lines[0])
			}
			if len(lines) != tc.wantLines {
				t.Fatalf("expected %d lines, got %d", tc.wantLines, len(lines))
			}
		})
	}

	if _, err := svc.ExportCSV(ctx, "nope"); !errors.Is(err, ErrUnknownReport) {
		t.Fatalf("expected ErrUnknownReport, got %v", err)
	}
}
