package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/katiyar-electronics/bill-engine/constants"
)

// BillFields is the field set a template extractor fills in from raw
// document text. An absent match leaves the field at its zero value; that
// is never an error.
type BillFields struct {
	CustomerName    string  `json:"customer_name"`
	CustomerAddress string  `json:"customer_address"`
	Manufacturer    string  `json:"manufacturer"`
	Model           string  `json:"model"`
	SerialNumber    string  `json:"serial_number"`
	AssetCategory   string  `json:"asset_category"`
	AssetCost       float64 `json:"asset_cost"`
	FinanceFlag     bool    `json:"finance_flag"`
}

// BillRecord is the canonical, template-independent extraction output,
// ready for invoice assembly.
type BillRecord struct {
	BillFields
	Template constants.TemplateTag `json:"template"`
	Date     string                `json:"date"` // ISO calendar date of extraction
}

// Bill represents a persisted bill for data transfer between layers.
type Bill struct {
	ID            uuid.UUID  `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	Record        BillRecord `json:"record"`
	CreatedAt     time.Time  `json:"created_at"`
}
