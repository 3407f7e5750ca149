package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/payroll"
)

// ErrUnknownReport is returned for export requests naming a report that does
// not exist.
var ErrUnknownReport = fmt.Errorf("unknown report")

type PayrollMonth struct {
	Month      string  `json:"month"`
	Year       int     `json:"year"`
	Gross      float64 `json:"gross"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
	Payslips   int     `json:"payslips"`
}

type AttendanceSummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"halfDay"`
}

type DepartmentSummary struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	EmployeeCount int    `json:"employeeCount"`
}

type Service struct {
	Directory  *core.Store
	Attendance *attendance.Store
	Payroll    *payroll.Store
}

func NewService(directory *core.Store, att *attendance.Store, pay *payroll.Store) *Service {
	return &Service{Directory: directory, Attendance: att, Payroll: pay}
}

func (s *Service) PayrollReport(ctx context.Context) ([]PayrollMonth, error) {
	payslips, err := s.Payroll.List(ctx)
	if err != nil {
		return nil, err
	}
	type key struct {
		year  int
		month int
	}
	totals := map[key]*PayrollMonth{}
	for _, slip := range payslips {
		k := key{slip.Year, slip.Month}
		row, ok := totals[k]
		if !ok {
			row = &PayrollMonth{Month: time.Month(slip.Month).String()[:3], Year: slip.Year}
			totals[k] = row
		}
		row.Gross += slip.Earnings.Basic + slip.Earnings.Allowances + slip.Earnings.Bonus
		row.Deductions += slip.Deductions.Tax + slip.Deductions.Insurance + slip.Deductions.Other
		row.Net += slip.NetPay
		row.Payslips++
	}
	keys := make([]key, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	out := make([]PayrollMonth, 0, len(keys))
	for _, k := range keys {
		out = append(out, *totals[k])
	}
	return out, nil
}

func (s *Service) AttendanceReport(ctx context.Context) (AttendanceSummary, error) {
	records, err := s.Attendance.List(ctx)
	if err != nil {
		return AttendanceSummary{}, err
	}
	summary := AttendanceSummary{Total: len(records)}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		}
	}
	return summary, nil
}

func (s *Service) DepartmentReport(ctx context.Context) ([]DepartmentSummary, error) {
	departments, err := s.Directory.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DepartmentSummary, 0, len(departments))
	for _, dept := range departments {
		out = append(out, DepartmentSummary{Name: dept.Name, Description: dept.Description, EmployeeCount: dept.EmployeeCount})
	}
	return out, nil
}

// ExportCSV serializes the named report to delimited text.
func (s *Service) ExportCSV(ctx context.Context, report string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch report {
	case "payroll":
		rows, err := s.PayrollReport(ctx)
		if err != nil {
			return nil, err
		}
		_ = w.Write([]string{"month", "year", "gross", "deductions", "net", "payslips"})
		for _, row := range rows {
			_ = w.Write([]string{
				row.Month,
				strconv.Itoa(row.Year),
				strconv.FormatFloat(row.Gross, 'f', 2, 64),
				strconv.FormatFloat(row.Deductions, 'f', 2, 64),
				strconv.FormatFloat(row.Net, 'f', 2, 64),
				strconv.Itoa(row.Payslips),
			})
		}
	case "attendance":
		summary, err := s.AttendanceReport(ctx)
		if err != nil {
			return nil, err
		}
		_ = w.Write([]string{"total", "present", "absent", "late", "halfDay"})
		_ = w.Write([]string{
			strconv.Itoa(summary.Total),
			strconv.Itoa(summary.Present),
			strconv.Itoa(summary.Absent),
			strconv.Itoa(summary.Late),
			strconv.Itoa(summary.HalfDay),
		})
	case "departments":
		rows, err := s.DepartmentReport(ctx)
		if err != nil {
			return nil, err
		}
		_ = w.Write([]string{"name", "description", "employeeCount"})
		for _, row := range rows {
			_ = w.Write([]string{row.Name, row.Description, strconv.Itoa(row.EmployeeCount)})
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, report)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
