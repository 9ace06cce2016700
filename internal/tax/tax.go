// Package tax decomposes an asset cost into its CGST/SGST components.
// Amounts are tax-inclusive: the taxable value is backed out of the cost.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/katiyar-electronics/bill-engine/constants"
)

// Breakdown is the derived tax decomposition of a cost. Monetary fields are
// rounded to 2 decimal places; TaxRate is the per-component percent (the
// combined rate is twice that).
type Breakdown struct {
	Rate           decimal.Decimal `json:"rate"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	TaxableValue   decimal.Decimal `json:"taxable_value"`
	TotalTaxAmount decimal.Decimal `json:"total_tax_amount"`
	TaxRate        int             `json:"tax_rate"`
}

var (
	divisor18 = decimal.RequireFromString("1.18")
	divisor28 = decimal.RequireFromString("1.28")
	two       = decimal.NewFromInt(2)
)

// Compute derives the GST breakdown for a tax-inclusive cost. Air
// conditioners fall in the 28% slab (14% + 14%); everything else is 18%
// (9% + 9%). Callers validate cost >= 0.
func Compute(assetCost float64, assetCategory string) Breakdown {
	divisor, perComponent := divisor18, 9
	if constants.IsAirConditioner(assetCategory) {
		divisor, perComponent = divisor28, 14
	}

	cost := decimal.NewFromFloat(assetCost)
	taxable := cost.Div(divisor)
	totalTax := cost.Sub(taxable)
	half := totalTax.Div(two).Round(2)

	return Breakdown{
		Rate:           taxable.Round(2),
		CGST:           half,
		SGST:           half,
		TaxableValue:   taxable.Round(2),
		TotalTaxAmount: totalTax.Round(2),
		TaxRate:        perComponent,
	}
}
