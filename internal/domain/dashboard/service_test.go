package dashboard

import (
	"context"
	"testing"
	"time"

	"hrdesk/internal/domain/activity"
	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/payroll"
)

func fixedClock() time.Time {
	return time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
}

func newService() *Service {
	directory := core.NewStore()
	directory.Seed(
		[]core.Employee{
			{ID: "1", Name: "John Anderson", Status: core.StatusActive, JoiningDate: "2020-01-15"},
			{ID: "2", Name: "Sarah Mitchell", Status: core.StatusActive, JoiningDate: "2024-01-20"},
			{ID: "3", Name: "David Kim", Status: core.StatusOnLeave, JoiningDate: "2022-04-15"},
			{ID: "4", Name: "Amanda Foster", Status: core.StatusTerminated, JoiningDate: "2021-11-15"},
		},
		[]core.Department{
			{ID: "1", Name: "Engineering", EmployeeCount: 25},
			{ID: "2", Name: "Sales", EmployeeCount: 18},
		},
		nil,
	)

	att := attendance.NewStore()
	att.Seed([]attendance.Record{
		{ID: "1", EmployeeID: "1", Date: "2024-01-15", Status: attendance.StatusPresent},
		{ID: "2", EmployeeID: "2", Date: "2024-01-15", Status: attendance.StatusLate},
		{ID: "3", EmployeeID: "3", Date: "2024-01-15", Status: attendance.StatusAbsent},
		{ID: "4", EmployeeID: "4", Date: "2024-01-15", Status: attendance.StatusHalfDay},
		{ID: "5", EmployeeID: "1", Date: "2024-01-14", Status: attendance.StatusAbsent},
	})

	lv := leave.NewStore()
	lv.Seed([]leave.Request{
		{ID: "1", Status: leave.StatusPending},
		{ID: "2", Status: leave.StatusApproved},
		{ID: "3", Status: leave.StatusPending},
	})

	pay := payroll.NewStore()
	pay.Seed([]payroll.Payslip{
		{ID: "1", Month: 12, Year: 2023, NetPay: 18300},
		{ID: "2", Month: 1, Year: 2024, NetPay: 8700},
		{ID: "3", Month: 1, Year: 2024, NetPay: 6770},
	})

	act := activity.NewStore(10)
	act.Record("payroll_processed", "Monthly payroll processed")

	return NewService(directory, att, lv, pay, act, WithClock(fixedClock))
}

func TestStats(t *testing.T) {
	svc := newService()
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalEmployees != 4 {
		t.Fatalf("totalEmployees = %d, want 4", stats.TotalEmployees)
	}
	if stats.ActiveEmployees != 2 {
		t.Fatalf("activeEmployees = %d, want 2", stats.ActiveEmployees)
	}
	if stats.OnLeave != 1 {
		t.Fatalf("onLeave = %d, want 1", stats.OnLeave)
	}
	if stats.NewHires != 1 {
		t.Fatalf("newHires = %d, want 1 (joined within 90 days of 2024-02-01)", stats.NewHires)
	}
	if stats.PendingLeaves != 2 {
		t.Fatalf("pendingLeaves = %d, want 2", stats.PendingLeaves)
	}
	if stats.TotalPayroll != 15470 {
		t.Fatalf("totalPayroll = %v, want 15470 (latest month only)", stats.TotalPayroll)
	}
	// Latest date: present + late + half*0.5 = 2.5 of 4 -> 62.5%.
	if stats.AttendanceRate != 62.5 {
		t.Fatalf("attendanceRate = %v, want 62.5", stats.AttendanceRate)
	}
}

func TestAnalytics(t *testing.T) {
	svc := newService()
	got, err := svc.Analytics(context.Background())
	if err != nil {
		t.Fatalf("analytics failed: %v", err)
	}

	if len(got.MonthlyPayroll) != 2 {
		t.Fatalf("expected 2 payroll months, got %d", len(got.MonthlyPayroll))
	}
	if got.MonthlyPayroll[0].Month != "Dec" || got.MonthlyPayroll[0].Amount != 18300 {
		t.Fatalf("unexpected first month: %+v", got.MonthlyPayroll[0])
	}
	if got.MonthlyPayroll[1].Month != "Jan" || got.MonthlyPayroll[1].Amount != 15470 {
		t.Fatalf("unexpected second month: %+v", got.MonthlyPayroll[1])
	}

	if len(got.DepartmentDistribution) != 2 || got.DepartmentDistribution[0].Value != 25 {
		t.Fatalf("unexpected department distribution: %+v", got.DepartmentDistribution)
	}

	if len(got.AttendanceTrend) != 2 {
		t.Fatalf("expected 2 trend days, got %d", len(got.AttendanceTrend))
	}
	latest := got.AttendanceTrend[1]
	if latest.Date != "2024-01-15" || latest.Present != 1 || latest.Late != 1 || latest.Absent != 1 || latest.HalfDay != 1 {
		t.Fatalf("unexpected trend day: %+v", latest)
	}
	if latest.Day != "Mon" {
		t.Fatalf("expected weekday Mon for 2024-01-15, got %s", latest.Day)
	}
}

func TestRecentActivity(t *testing.T) {
	svc := newService()
	entries, err := svc.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("activity failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Type != "payroll_processed" {
		t.Fatalf("unexpected activity: %+v", entries)
	}
}
