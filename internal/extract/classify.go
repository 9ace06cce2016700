package extract

import (
	"strings"

	"github.com/katiyar-electronics/bill-engine/constants"
)

// Signature phrases as they appear verbatim in the source documents.
// Matching is case-sensitive substring containment.
const (
	hdbSignature  = "HDB FINANCIAL SERVICES"
	idfcSignature = "IDFC FIRST Bank"
)

// Classify selects the template for a document. Signatures are checked in
// priority order, HDB before IDFC, first match wins; a document carrying
// neither is handled by the generic layout.
func Classify(text string) constants.TemplateTag {
	if strings.Contains(text, hdbSignature) {
		return constants.TemplateHDB
	}
	if strings.Contains(text, idfcSignature) {
		return constants.TemplateIDFC
	}
	return constants.TemplateGeneric
}
