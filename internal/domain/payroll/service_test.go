package payroll

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"hrdesk/internal/platform/memstore"
)

type fakeDirectory map[string]string

func (d fakeDirectory) GetEmployeeByID(ctx context.Context, id string) (string, bool) {
	name, ok := d[id]
	return name, ok
}

func newService() *Service {
	store := NewStore()
	store.Seed([]Payslip{
		{ID: "1", EmployeeID: "1", EmployeeName: "John Anderson", Month: 12, Year: 2023, Earnings: Earnings{Basic: 15000, Allowances: 5000, Bonus: 2000}, Deductions: Deductions{Tax: 3000, Insurance: 500, Other: 200}, NetPay: 18300, Status: StatusPaid},
		{ID: "2", EmployeeID: "4", EmployeeName: "Emily Rodriguez", Month: 1, Year: 2024, Earnings: Earnings{Basic: 8000, Allowances: 2600}, Deductions: Deductions{Tax: 1500, Insurance: 300, Other: 100}, NetPay: 8700, Status: StatusPending},
	})
	return NewService(store, fakeDirectory{"5": "David Kim"})
}

func TestProcessCountsSelectedEmployees(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	res, err := svc.Process(ctx, ProcessRequest{EmployeeIDs: []string{"1", "4"}})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if res.Processed != 2 {
		t.Fatalf("expected 2 processed, got %d", res.Processed)
	}

	// No selection means the whole collection.
	res, err = svc.Process(ctx, ProcessRequest{})
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if res.Processed != 2 {
		t.Fatalf("expected 2 processed, got %d", res.Processed)
	}

	// Process never mutates payslips.
	slip, err := svc.Get(ctx, "2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if slip.Status != StatusPending {
		t.Fatalf("process must not touch payslip status, got %s", slip.Status)
	}
}

func TestCreateDefaultsNetPayAndName(t *testing.T) {
	svc := newService()
	created, err := svc.Create(context.Background(), Payslip{
		EmployeeID: "5",
		Month:      2,
		Year:       2024,
		Earnings:   Earnings{Basic: 6000, Allowances: 2100},
		Deductions: Deductions{Tax: 1000, Insurance: 250, Other: 80},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.NetPay != 6770 {
		t.Fatalf("expected netPay defaulted to 6770, got %v", created.NetPay)
	}
	if created.EmployeeName != "David Kim" {
		t.Fatalf("expected employee name resolved, got %q", created.EmployeeName)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected default status Pending, got %s", created.Status)
	}
}

func TestExportCSV(t *testing.T) {
	svc := newService()
	out, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	text := string(out)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id,employeeId,employeeName,month,year,netPay,status" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(text, "John Anderson") || !strings.Contains(text, "18300.00") {
		t.Fatalf("expected payslip data in export, got %q", text)
	}
}

func TestPayslipPDF(t *testing.T) {
	svc := newService()
	out, err := svc.PayslipPDF(context.Background(), "1")
	if err != nil {
		t.Fatalf("pdf failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %q...", out[:min(16, len(out))])
	}

	if _, err := svc.PayslipPDF(context.Background(), "missing"); !memstore.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
