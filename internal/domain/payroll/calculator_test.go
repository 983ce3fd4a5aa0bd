package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var overtimeThreshold = decimal.NewFromInt(40)

func TestCompute_NoOvertime(t *testing.T) {
	comp := Compute(d("38.5"), d("20"), d("30"), overtimeThreshold)

	assert.Equal(t, "38.5", comp.RegularHours.String())
	assert.True(t, comp.OvertimeHours.IsZero())
	assert.Equal(t, "770", comp.GrossPay.String())
}

func TestCompute_OvertimeSplit(t *testing.T) {
	comp := Compute(d("45"), d("10"), d("15"), overtimeThreshold)

	assert.Equal(t, "40", comp.RegularHours.String())
	assert.Equal(t, "5", comp.OvertimeHours.String())
	// 40*10 + 5*15
	assert.Equal(t, "475", comp.GrossPay.String())
	assert.Equal(t, "57", comp.Deductions.FederalTax.String())
	assert.Equal(t, "23.75", comp.Deductions.StateTax.String())
	assert.Equal(t, "29.45", comp.Deductions.SocialSecurity.String())
	assert.Equal(t, "6.89", comp.Deductions.Medicare.String())
	assert.Equal(t, "117.09", comp.Deductions.Total.String())
	assert.Equal(t, "357.91", comp.NetPay.String())
}

func TestCompute_ExactlyAtThreshold(t *testing.T) {
	comp := Compute(d("40"), d("10"), d("15"), overtimeThreshold)

	assert.Equal(t, "40", comp.RegularHours.String())
	assert.True(t, comp.OvertimeHours.IsZero())
}

func TestCompute_ZeroRateEarnsNothing(t *testing.T) {
	comp := Compute(d("45"), decimal.Zero, decimal.Zero, overtimeThreshold)

	assert.True(t, comp.GrossPay.IsZero())
	assert.True(t, comp.NetPay.IsZero())
	assert.True(t, comp.Deductions.Total.IsZero())
}

func TestCompute_NetPlusDeductionsEqualsGross(t *testing.T) {
	comp := Compute(d("41.37"), d("23.55"), d("35.33"), overtimeThreshold)

	recombined := comp.NetPay.Add(comp.Deductions.Total)
	assert.True(t, recombined.Equal(comp.GrossPay),
		"net %s + deductions %s != gross %s", comp.NetPay, comp.Deductions.Total, comp.GrossPay)
}

func TestComputeDeductions(t *testing.T) {
	ded := ComputeDeductions(d("160"), decimal.Zero)

	assert.Equal(t, "19.2", ded.FederalTax.String())
	assert.Equal(t, "8", ded.StateTax.String())
	assert.Equal(t, "9.92", ded.SocialSecurity.String())
	assert.Equal(t, "2.32", ded.Medicare.String())
	assert.Equal(t, "39.44", ded.Total.String())
}

func TestComputeDeductions_OtherIncludedInTotal(t *testing.T) {
	ded := ComputeDeductions(d("1000"), d("50"))

	assert.Equal(t, "50", ded.Other.String())
	// 120 + 50 + 62 + 14.50 + 50
	assert.Equal(t, "296.5", ded.Total.String())
}
