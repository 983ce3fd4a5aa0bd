package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PayStubDocument carries everything the rendered stub shows. Amounts come
// in pre-rounded; the renderer only formats.
type PayStubDocument struct {
	CompanyName   string
	EmployeeName  string
	EmployeeEmail string
	PeriodStart   string
	PeriodEnd     string
	PayDate       string

	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	HourlyRate    decimal.Decimal
	OvertimeRate  decimal.Decimal

	GrossPay        decimal.Decimal
	FederalTax      decimal.Decimal
	StateTax        decimal.Decimal
	SocialSecurity  decimal.Decimal
	Medicare        decimal.Decimal
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// RenderPayStub produces a single-page A4 pay stub.
func RenderPayStub(doc PayStubDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, doc.CompanyName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, "Earnings Statement", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, doc.EmployeeName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, doc.EmployeeEmail, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Pay period: %s to %s", doc.PeriodStart, doc.PeriodEnd), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Pay date: %s", doc.PayDate), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	line := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(110, 7, label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, value, "B", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Earnings", "", 1, "L", false, 0, "")
	line(fmt.Sprintf("Regular (%s h x %s)", doc.RegularHours.String(), money(doc.HourlyRate)),
		money(doc.RegularHours.Mul(doc.HourlyRate).Round(2)), false)
	if doc.OvertimeHours.IsPositive() {
		line(fmt.Sprintf("Overtime (%s h x %s)", doc.OvertimeHours.String(), money(doc.OvertimeRate)),
			money(doc.OvertimeHours.Mul(doc.OvertimeRate).Round(2)), false)
	}
	line("Gross pay", money(doc.GrossPay), true)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Deductions", "", 1, "L", false, 0, "")
	line("Federal income tax", money(doc.FederalTax), false)
	line("State income tax", money(doc.StateTax), false)
	line("Social Security", money(doc.SocialSecurity), false)
	line("Medicare", money(doc.Medicare), false)
	if doc.OtherDeductions.IsPositive() {
		line("Other deductions", money(doc.OtherDeductions), false)
	}
	line("Total deductions", money(doc.TotalDeductions), true)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(110, 9, "Net pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 9, money(doc.NetPay), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pay stub pdf: %w", err)
	}

	return buf.Bytes(), nil
}
