package dashboard

import (
	"context"
	"math"
	"sort"
	"time"

	"hrdesk/internal/domain/activity"
	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
)

type Stats struct {
	TotalEmployees  int     `json:"totalEmployees"`
	ActiveEmployees int     `json:"activeEmployees"`
	OnLeave         int     `json:"onLeave"`
	NewHires        int     `json:"newHires"`
	PendingLeaves   int     `json:"pendingLeaves"`
	TotalPayroll    float64 `json:"totalPayroll"`
	AttendanceRate  float64 `json:"attendanceRate"`
}

type MonthlyPayroll struct {
	Month  string  `json:"month"`
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

type DepartmentShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type AttendanceDay struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
	HalfDay int    `json:"halfDay"`
}

type Analytics struct {
	MonthlyPayroll         []MonthlyPayroll  `json:"monthlyPayroll"`
	DepartmentDistribution []DepartmentShare `json:"departmentDistribution"`
	AttendanceTrend        []AttendanceDay   `json:"attendanceTrend"`
}

// newHireWindow is how far back a joining date still counts as a new hire.
const newHireWindow = 90 * 24 * time.Hour

// Service aggregates dashboard figures from the live stores, so the numbers
// track CRUD activity instead of a frozen snapshot.
type Service struct {
	Directory  *core.Store
	Attendance *attendance.Store
	Leave      *leave.Store
	Payroll    *payroll.Store
	Activity   *activity.Store
	now        func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(directory *core.Store, att *attendance.Store, lv *leave.Store, pay *payroll.Store, act *activity.Store, opts ...Option) *Service {
	s := &Service{Directory: directory, Attendance: att, Leave: lv, Payroll: pay, Activity: act, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	employees, err := s.Directory.ListEmployees(ctx)
	if err != nil {
		return Stats{}, err
	}
	leaves, err := s.Leave.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	payslips, err := s.Payroll.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	records, err := s.Attendance.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalEmployees: len(employees)}
	cutoff := s.now().Add(-newHireWindow)
	for _, emp := range employees {
		switch emp.Status {
		case core.StatusActive:
			stats.ActiveEmployees++
		case core.StatusOnLeave:
			stats.OnLeave++
		}
		if joined, err := time.Parse("2006-01-02", emp.JoiningDate); err == nil && joined.After(cutoff) {
			stats.NewHires++
		}
	}

	for _, req := range leaves {
		if req.Status == leave.StatusPending {
			stats.PendingLeaves++
		}
	}

	stats.TotalPayroll = latestMonthTotal(payslips)
	stats.AttendanceRate = latestDayRate(records)
	return stats, nil
}

func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	payslips, err := s.Payroll.List(ctx)
	if err != nil {
		return Analytics{}, err
	}
	departments, err := s.Directory.ListDepartments(ctx)
	if err != nil {
		return Analytics{}, err
	}
	records, err := s.Attendance.List(ctx)
	if err != nil {
		return Analytics{}, err
	}

	return Analytics{
		MonthlyPayroll:         monthlySeries(payslips),
		DepartmentDistribution: departmentShares(departments),
		AttendanceTrend:        attendanceSeries(records),
	}, nil
}

func (s *Service) RecentActivity(ctx context.Context) ([]activity.Entry, error) {
	return s.Activity.Recent(), nil
}

// latestMonthTotal sums netPay over the most recent (year, month) on file.
func latestMonthTotal(payslips []payroll.Payslip) float64 {
	bestYear, bestMonth := 0, 0
	for _, slip := range payslips {
		if slip.Year > bestYear || (slip.Year == bestYear && slip.Month > bestMonth) {
			bestYear, bestMonth = slip.Year, slip.Month
		}
	}
	var total float64
	for _, slip := range payslips {
		if slip.Year == bestYear && slip.Month == bestMonth {
			total += slip.NetPay
		}
	}
	return total
}

// latestDayRate computes attendance for the most recent date on file:
// present and late count fully, half days count half.
func latestDayRate(records []attendance.Record) float64 {
	latest := ""
	for _, rec := range records {
		if rec.Date > latest {
			latest = rec.Date
		}
	}
	if latest == "" {
		return 0
	}
	var attended, total float64
	for _, rec := range records {
		if rec.Date != latest {
			continue
		}
		total++
		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusLate:
			attended++
		case attendance.StatusHalfDay:
			attended += 0.5
		}
	}
	if total == 0 {
		return 0
	}
	return math.Round(attended/total*1000) / 10
}

func monthlySeries(payslips []payroll.Payslip) []MonthlyPayroll {
	type key struct {
		year  int
		month int
	}
	totals := map[key]float64{}
	for _, slip := range payslips {
		totals[key{slip.Year, slip.Month}] += slip.NetPay
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
	out := make([]MonthlyPayroll, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthlyPayroll{
			Month:  time.Month(k.month).String()[:3],
			Year:   k.year,
			Amount: totals[k],
		})
	}
	return out
}

func departmentShares(departments []core.Department) []DepartmentShare {
	out := make([]DepartmentShare, 0, len(departments))
	for _, dept := range departments {
		out = append(out, DepartmentShare{Name: dept.Name, Value: dept.EmployeeCount})
	}
	return out
}

func attendanceSeries(records []attendance.Record) []AttendanceDay {
	byDate := map[string]*AttendanceDay{}
	for _, rec := range records {
		day, ok := byDate[rec.Date]
		if !ok {
			day = &AttendanceDay{Date: rec.Date}
			if parsed, err := time.Parse("2006-01-02", rec.Date); err == nil {
				day.Day = parsed.Weekday().String()[:3]
			}
			byDate[rec.Date] = day
		}
		switch rec.Status {
		case attendance.StatusPresent:
			day.Present++
		case attendance.StatusAbsent:
			day.Absent++
		case attendance.StatusLate:
			day.Late++
		case attendance.StatusHalfDay:
			day.HalfDay++
		}
	}
	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	out := make([]AttendanceDay, 0, len(dates))
	for _, date := range dates {
		out = append(out, *byDate[date])
	}
	return out
}
