package payroll

import "testing"

func TestNetPay(t *testing.T) {
	tests := []struct {
		name       string
		earnings   Earnings
		deductions Deductions
		want       float64
	}{
		{
			name:       "typical payslip",
			earnings:   Earnings{Basic: 8000, Allowances: 2600, Bonus: 0},
			deductions: Deductions{Tax: 1500, Insurance: 300, Other: 100},
			want:       8700,
		},
		{
			name:       "with bonus",
			earnings:   Earnings{Basic: 15000, Allowances: 5000, Bonus: 2000},
			deductions: Deductions{Tax: 3000, Insurance: 500, Other: 200},
			want:       18300,
		},
		{
			name: "all zero",
			want: 0,
		},
		{
			name:       "deductions exceed earnings",
			earnings:   Earnings{Basic: 100},
			deductions: Deductions{Tax: 150},
			want:       -50,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NetPay(tc.earnings, tc.deductions); got != tc.want {
				t.Fatalf("NetPay = %v, want %v", got, tc.want)
			}
		})
	}
}
