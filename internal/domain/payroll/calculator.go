package payroll

import "github.com/shopspring/decimal"

// Statutory withholding rates applied to gross pay.
var (
	RateFederalTax     = decimal.NewFromFloat(0.12)
	RateStateTax       = decimal.NewFromFloat(0.05)
	RateSocialSecurity = decimal.NewFromFloat(0.062)
	RateMedicare       = decimal.NewFromFloat(0.0145)

	// DefaultOvertimeMultiplier applies when the employee has no explicit
	// overtime rate.
	DefaultOvertimeMultiplier = decimal.NewFromFloat(1.5)
)

// Deductions is the per-category withholding breakdown for one stub.
type Deductions struct {
	FederalTax     decimal.Decimal
	StateTax       decimal.Decimal
	SocialSecurity decimal.Decimal
	Medicare       decimal.Decimal
	Other          decimal.Decimal
	Total          decimal.Decimal
}

// Computation is the full pay math for one employee over one pay period.
type Computation struct {
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	HourlyRate    decimal.Decimal
	OvertimeRate  decimal.Decimal
	GrossPay      decimal.Decimal
	Deductions    Deductions
	NetPay        decimal.Decimal
}

// Compute splits worked hours into regular and overtime at the threshold,
// prices them at the given rates and withholds the statutory deductions.
// Every intermediate figure is rounded to 2 decimal places so the stored
// stub re-adds exactly.
func Compute(workedHours, hourlyRate, overtimeRate, overtimeThreshold decimal.Decimal) Computation {
	regularHours := workedHours
	overtimeHours := decimal.Zero
	if overtimeThreshold.IsPositive() && workedHours.GreaterThan(overtimeThreshold) {
		regularHours = overtimeThreshold
		overtimeHours = workedHours.Sub(overtimeThreshold)
	}

	regularPay := regularHours.Mul(hourlyRate).Round(2)
	overtimePay := overtimeHours.Mul(overtimeRate).Round(2)
	gross := regularPay.Add(overtimePay).Round(2)

	deductions := ComputeDeductions(gross, decimal.Zero)

	return Computation{
		RegularHours:  regularHours,
		OvertimeHours: overtimeHours,
		HourlyRate:    hourlyRate,
		OvertimeRate:  overtimeRate,
		GrossPay:      gross,
		Deductions:    deductions,
		NetPay:        gross.Sub(deductions.Total).Round(2),
	}
}

// ComputeDeductions withholds each statutory category from gross at its
// rate, rounding per category before totalling.
func ComputeDeductions(gross, other decimal.Decimal) Deductions {
	d := Deductions{
		FederalTax:     gross.Mul(RateFederalTax).Round(2),
		StateTax:       gross.Mul(RateStateTax).Round(2),
		SocialSecurity: gross.Mul(RateSocialSecurity).Round(2),
		Medicare:       gross.Mul(RateMedicare).Round(2),
		Other:          other.Round(2),
	}
	d.Total = d.FederalTax.
		Add(d.StateTax).
		Add(d.SocialSecurity).
		Add(d.Medicare).
		Add(d.Other).
		Round(2)
	return d
}
