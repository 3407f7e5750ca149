package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

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

func (s *Service) List(ctx context.Context) ([]Payslip, error) {
	return s.Store.List(ctx)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	return s.Store.ListByEmployee(ctx, employeeID)
}

func (s *Service) Get(ctx context.Context, id string) (Payslip, error) {
	return s.Store.Get(ctx, id)
}

// Create fills an empty employeeName from the directory and defaults netPay
// from the buckets when the caller left it at zero. From then on the stored
// figure is authoritative.
func (s *Service) Create(ctx context.Context, slip Payslip) (Payslip, error) {
	if slip.EmployeeName == "" && s.Directory != nil {
		if name, ok := s.Directory.GetEmployeeByID(ctx, slip.EmployeeID); ok {
			slip.EmployeeName = name
		}
	}
	if slip.NetPay == 0 {
		slip.NetPay = NetPay(slip.Earnings, slip.Deductions)
	}
	if slip.Status == "" {
		slip.Status = StatusPending
	}
	return s.Store.Create(ctx, slip)
}

func (s *Service) Update(ctx context.Context, id string, patch PayslipPatch) (Payslip, error) {
	return s.Store.Update(ctx, id, patch)
}

// Process reports how many payslips a run would cover. It does not mutate
// payslip records.
func (s *Service) Process(ctx context.Context, req ProcessRequest) (ProcessResult, error) {
	count := len(req.EmployeeIDs)
	if count == 0 {
		slips, err := s.Store.List(ctx)
		if err != nil {
			return ProcessResult{}, err
		}
		count = len(slips)
	}
	return ProcessResult{
		Processed: count,
		Message:   fmt.Sprintf("Payroll processed successfully for %d employees", count),
	}, nil
}

// ExportCSV serializes the payslip collection to delimited text.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	slips, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "employeeId", "employeeName", "month", "year", "netPay", "status"})
	for _, slip := range slips {
		_ = w.Write([]string{
			slip.ID,
			slip.EmployeeID,
			slip.EmployeeName,
			strconv.Itoa(slip.Month),
			strconv.Itoa(slip.Year),
			strconv.FormatFloat(slip.NetPay, 'f', 2, 64),
			string(slip.Status),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PayslipPDF renders a single payslip as a PDF document.
func (s *Service) PayslipPDF(ctx context.Context, id string) ([]byte, error) {
	slip, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	gross := slip.Earnings.Basic + slip.Earnings.Allowances + slip.Earnings.Bonus
	deductions := slip.Deductions.Tax + slip.Deductions.Insurance + slip.Deductions.Other
	period := fmt.Sprintf("%s %d", time.Month(slip.Month), slip.Year)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", slip.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %.2f", gross))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", deductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %.2f", slip.NetPay))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", slip.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
