package extract

import (
	"regexp"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

var (
	cholaNameRe      = regexp.MustCompile(`(?i)Customer Name:?[ \t]*([A-Za-z]+(?:\s+[A-Za-z]+){0,2})`)
	cholaNameNoiseRe = regexp.MustCompile(`\s+Customer$`)
	cholaMfrRe       = regexp.MustCompile(`(?i)Manufacturer:?[ \t]*([^ \t\n]+)`)
	cholaModelRe     = regexp.MustCompile(`(?i)Model:?\s*([^\n\r]+?)\s*(?:Asset Category|[\n\r])`)
	cholaSerialRe    = regexp.MustCompile(`(?i)Serial Number:?[ \t]*([^ \t\n]+)`)
	cholaCostRe      = regexp.MustCompile(`(?i)A\. Asset Cost\D*(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)`)
)

// GenericExtractor handles the default (Chola-style) layout used when no
// lender signature is present.
type GenericExtractor struct{}

func (GenericExtractor) Template() constants.TemplateTag { return constants.TemplateGeneric }

func (GenericExtractor) Extract(text string) entity.BillFields {
	var f entity.BillFields

	// The name capture (up to three words) tends to swallow the "Customer"
	// of a following "Customer Address" label.
	name := firstMatch(cholaNameRe, text)
	f.CustomerName = cholaNameNoiseRe.ReplaceAllString(name, "")

	f.Manufacturer = firstMatch(cholaMfrRe, text)
	f.CustomerAddress = genericAddress(text)
	f.Model = firstMatch(cholaModelRe, text)
	f.SerialNumber = firstMatch(cholaSerialRe, text)
	if raw := firstMatch(cholaCostRe, text); raw != "" {
		f.AssetCost = parseAmount(raw)
	}

	return f
}
