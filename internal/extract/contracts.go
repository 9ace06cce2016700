package extract

import (
	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

// TemplateExtractor is the per-lender extraction strategy: raw document
// text in, populated field set out. Implementations are pure and must not
// fail on malformed input — an unmatched field stays at its zero value.
type TemplateExtractor interface {
	Template() constants.TemplateTag
	Extract(text string) entity.BillFields
}

var extractors = map[constants.TemplateTag]TemplateExtractor{
	constants.TemplateHDB:     HDBExtractor{},
	constants.TemplateIDFC:    IDFCExtractor{},
	constants.TemplateGeneric: GenericExtractor{},
}

// ForTemplate returns the extractor for a tag. Unknown tags fall back to
// the generic extractor so a caller can never end up without a strategy.
func ForTemplate(tag constants.TemplateTag) TemplateExtractor {
	if ex, ok := extractors[tag]; ok {
		return ex
	}
	return GenericExtractor{}
}
