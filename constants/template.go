package constants

// TemplateTag identifies the lender document layout a piece of text was
// issued in. Exactly one tag applies per document.
type TemplateTag string

// Stable values (store these exact strings in DB).
const (
	TemplateHDB     TemplateTag = "HDB"             // HDB Financial Services delivery order
	TemplateIDFC    TemplateTag = "IDFC_FIRST_BANK" // IDFC FIRST Bank approval letter
	TemplateGeneric TemplateTag = "GENERIC"         // catch-all (Chola-style) layout
)

func AllTemplates() []TemplateTag {
	return []TemplateTag{TemplateHDB, TemplateIDFC, TemplateGeneric}
}
