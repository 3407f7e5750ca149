package payroll

// NetPay computes total earnings minus total deductions. Stored payslips keep
// their own netPay figure; this is used when creating one without it.
func NetPay(e Earnings, d Deductions) float64 {
	gross := e.Basic + e.Allowances + e.Bonus
	total := d.Tax + d.Insurance + d.Other
	return gross - total
}
