// Package billing assembles the invoice payload handed to the rendering
// side: canonical record, GST breakdown, and the amounts spelled out.
package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/katiyar-electronics/bill-engine/internal/entity"
	"github.com/katiyar-electronics/bill-engine/internal/tax"
	"github.com/katiyar-electronics/bill-engine/internal/words"
)

// Invoice is everything a renderer needs for one bill.
type Invoice struct {
	InvoiceNumber    string            `json:"invoice_number"`
	InvoiceDate      string            `json:"invoice_date"` // "02 Jan 2006"
	Record           entity.BillRecord `json:"record"`
	Tax              tax.Breakdown     `json:"tax"`
	AmountInWords    string            `json:"amount_in_words"`
	TaxAmountInWords string            `json:"tax_amount_in_words"`
}

// BuildInvoice derives the invoice payload for a record, dated today.
// serialOverride, when non-empty, replaces the extracted serial number
// (manual entry for documents where the serial never prints).
func BuildInvoice(record entity.BillRecord, invoiceNumber, serialOverride string) Invoice {
	return BuildInvoiceAt(record, invoiceNumber, serialOverride, time.Now())
}

// BuildInvoiceAt is BuildInvoice with an explicit issue date. Used when
// re-rendering a stored bill, so the invoice date stays the bill's creation
// date instead of drifting to the fetch date.
func BuildInvoiceAt(record entity.BillRecord, invoiceNumber, serialOverride string, issuedAt time.Time) Invoice {
	if serialOverride != "" {
		record.SerialNumber = serialOverride
	}

	breakdown := tax.Compute(record.AssetCost, record.AssetCategory)
	totalTax, _ := breakdown.TotalTaxAmount.Float64()

	return Invoice{
		InvoiceNumber:    invoiceNumber,
		InvoiceDate:      issuedAt.Format("02 Jan 2006"),
		Record:           record,
		Tax:              breakdown,
		AmountInWords:    words.FromAmount(record.AssetCost),
		TaxAmountInWords: words.FromAmount(totalTax),
	}
}

// FormatINR renders an amount with Indian digit grouping and the rupee
// sign, e.g. "₹ 12,34,567.89".
func FormatINR(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	grouped := groupIndian(intPart)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return "₹ " + sign + grouped + "." + fracPart
}

// groupIndian inserts commas after the last three digits and then every
// two: 1234567 -> 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}
