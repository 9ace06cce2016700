package extract

import (
	"regexp"
	"strings"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

// idfcDisclosure is the fixed paragraph that precedes the delivery address
// box in IDFC approval letters.
const idfcDisclosure = "The required formalities with the customer have been completed and hence we request you to collect the down payment and only deliver the product at the following address post device validation is completed and final DA is received."

var (
	idfcNameRe    = regexp.MustCompile(`(?i)loan application of (.+?) has been approved for`)
	idfcModelRe   = regexp.MustCompile(`(?i)Model Number:?[ \t]*([^\n\r]+?)\s*(?:Scheme Name|Serial Number|Asset Category|[\n\r])`)
	idfcSerialRe  = regexp.MustCompile(`(?i)Serial Number:?[ \t]*([^ \t\n]+)`)
	idfcCostRe    = regexp.MustCompile(`(?i)Cost Of Product[\s:]*([\d,]+(?:\.\d+)?)`)
	idfcAddrLabel = regexp.MustCompile(`(?i)Customer Address\s*:?`)
	idfcThanking  = regexp.MustCompile(`(?i)Thanking you`)
)

// IDFCExtractor handles IDFC FIRST Bank approval letters. The bank does not
// print a manufacturer, so that field stays empty.
type IDFCExtractor struct{}

func (IDFCExtractor) Template() constants.TemplateTag { return constants.TemplateIDFC }

func (IDFCExtractor) Extract(text string) entity.BillFields {
	var f entity.BillFields

	if name := firstMatch(idfcNameRe, text); name != "" {
		f.CustomerName = name + " [IDFC FIRST BANK]"
	}

	f.CustomerAddress = idfcAddress(text)
	f.Model = stripTrailing(firstMatch(idfcModelRe, text), "E")
	f.SerialNumber = firstMatch(idfcSerialRe, text)
	if raw := firstMatch(idfcCostRe, text); raw != "" {
		f.AssetCost = parseAmount(raw)
	}

	return f
}

// idfcAddress extracts the delivery address from the box that follows the
// disclosure paragraph, ending at the "Thanking you" sign-off. Falls back
// to the generic address-label pattern when the box is absent.
func idfcAddress(text string) string {
	if paraIdx := strings.Index(text, idfcDisclosure); paraIdx != -1 {
		after := text[paraIdx:]
		if loc := idfcAddrLabel.FindStringIndex(after); loc != nil {
			tail := after[loc[1]:]
			if t := idfcThanking.FindStringIndex(tail); t != nil {
				return strings.TrimSpace(tail[:t[0]])
			}
			return strings.TrimSpace(tail)
		}
	}
	return genericAddress(text)
}
