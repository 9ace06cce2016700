package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeStandardSlab(t *testing.T) {
	got := Compute(11800, "Television")

	assert.Equal(t, 9, got.TaxRate)
	assert.True(t, got.CGST.Equal(dec("900")), "cgst = %s", got.CGST)
	assert.True(t, got.SGST.Equal(dec("900")), "sgst = %s", got.SGST)
	assert.True(t, got.TaxableValue.Equal(dec("10000")), "taxable = %s", got.TaxableValue)
	assert.True(t, got.TotalTaxAmount.Equal(dec("1800")), "total tax = %s", got.TotalTaxAmount)
}

func TestComputeAirConditionerSlab(t *testing.T) {
	got := Compute(12800, "Split Air Conditioner")

	assert.Equal(t, 14, got.TaxRate)
	assert.True(t, got.CGST.Equal(dec("1400")), "cgst = %s", got.CGST)
	assert.True(t, got.SGST.Equal(dec("1400")), "sgst = %s", got.SGST)
	assert.True(t, got.TaxableValue.Equal(dec("10000")), "taxable = %s", got.TaxableValue)
}

func TestComputeCategoryMatchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, 14, Compute(1000, "air conditioner").TaxRate)
	assert.Equal(t, 14, Compute(1000, "AIR CONDITIONER 1.5T").TaxRate)
	assert.Equal(t, 9, Compute(1000, "Washing Machine").TaxRate)
	assert.Equal(t, 9, Compute(1000, "").TaxRate)
}

func TestComputeDecompositionAddsUp(t *testing.T) {
	costs := []float64{0, 999.99, 18500, 24990, 31490.5, 123456.78}
	categories := []string{"Refrigerator", "Air Conditioner"}

	for _, cost := range costs {
		for _, category := range categories {
			got := Compute(cost, category)

			require.True(t, got.CGST.Equal(got.SGST), "cgst != sgst for cost %v", cost)

			sum, _ := got.TaxableValue.Add(got.CGST).Add(got.SGST).Float64()
			assert.InDelta(t, cost, sum, 0.02, "cost %v category %s", cost, category)
		}
	}
}

func TestComputeZeroCost(t *testing.T) {
	got := Compute(0, "Television")
	assert.True(t, got.CGST.IsZero())
	assert.True(t, got.TaxableValue.IsZero())
	assert.True(t, got.TotalTaxAmount.IsZero())
}
