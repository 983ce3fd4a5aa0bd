package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ratePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestEffectiveHourlyRate(t *testing.T) {
	own := Employee{HourlyRate: ratePtr("25"), PositionHourlyRate: ratePtr("18")}
	assert.Equal(t, "25", own.EffectiveHourlyRate().String())

	fromPosition := Employee{PositionHourlyRate: ratePtr("18")}
	assert.Equal(t, "18", fromPosition.EffectiveHourlyRate().String())

	// No rate anywhere resolves to zero, not an error.
	none := Employee{}
	assert.True(t, none.EffectiveHourlyRate().IsZero())
}

func TestEffectiveOvertimeRate(t *testing.T) {
	explicit := Employee{HourlyRate: ratePtr("20"), OvertimeRate: ratePtr("35")}
	assert.Equal(t, "35", explicit.EffectiveOvertimeRate().String())

	derived := Employee{HourlyRate: ratePtr("20")}
	assert.Equal(t, "30", derived.EffectiveOvertimeRate().String())

	fromPosition := Employee{PositionHourlyRate: ratePtr("10")}
	assert.Equal(t, "15", fromPosition.EffectiveOvertimeRate().String())
}
