package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAmountIncTax(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   float64
	}{
		{"standard rate", 100, 20, 120},
		{"zero rate", 55.5, 0, 55.5},
		{"zero amount", 0, 20, 0},
		{"fractional rounds half up", 33.33, 17.5, 39.16},
		{"small amount", 0.01, 20, 0.01},
		{"negative refund line", -100, 20, -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AmountIncTax(tt.amount, tt.rate))
		})
	}
}

func TestAmountIncTaxRoundsPerLine(t *testing.T) {
	// Итог складывается из уже округленных построчных значений,
	// а не округляется один раз по сумме
	lines := []float64{10.004, 10.004}
	rate := 0.0

	perLine := decimal.Zero
	for _, amount := range lines {
		perLine = perLine.Add(decimal.NewFromFloat(AmountIncTax(amount, rate)))
	}
	require.Equal(t, 20.0, perLine.InexactFloat64())

	wholeSum := decimal.NewFromFloat(lines[0]).Add(decimal.NewFromFloat(lines[1])).Round(2).InexactFloat64()
	require.Equal(t, 20.01, wholeSum)
}
