package extract

import (
	"regexp"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

var (
	hdbCustomerRe = regexp.MustCompile(`(?i)to our Customer\s+(.+?)\s*\.\s*Pursuant`)
	hdbBrandRe    = regexp.MustCompile(`(?i)Product Brand\s*:\s*(\S+)`)
	hdbModelRe    = regexp.MustCompile(`(?i)Product Model\s*:\s*(\S+)`)
	hdbAddressRe  = regexp.MustCompile(`(?is)Customer Address\s*:\s*(.*?\d{6})`)
	hdbIMEIRe     = regexp.MustCompile(`(?i)IMEI\s*:\s*(\S+)`)
)

// HDBExtractor handles HDB Financial Services delivery orders.
type HDBExtractor struct{}

func (HDBExtractor) Template() constants.TemplateTag { return constants.TemplateHDB }

func (HDBExtractor) Extract(text string) entity.BillFields {
	f := entity.BillFields{FinanceFlag: true}

	f.CustomerName = firstMatch(hdbCustomerRe, text)
	f.Manufacturer = firstMatch(hdbBrandRe, text)

	// Model runs until the next column header; the single-token form is a
	// fallback for older layouts that put nothing between them.
	if model, ok := betweenLabels(text, "Product Model :", "Scheme Code & EMI"); ok {
		f.Model = model
	} else {
		f.Model = firstMatch(hdbModelRe, text)
	}

	f.AssetCost = scanAmountAfter(text, "A. Product Cost")
	f.CustomerAddress = firstMatch(hdbAddressRe, text)

	// The serial column sometimes carries only promo text ("cashback")
	// bleeding in from the neighbouring cell.
	if serial, ok := betweenLabels(text, "Serial Number", "Model Number"); ok {
		f.SerialNumber = rejectSentinel(serial, "cashback")
	} else {
		f.SerialNumber = firstMatch(hdbIMEIRe, text)
	}

	return f
}
