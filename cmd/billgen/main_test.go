package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/billing"
	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

func TestBuildOutputSerialOverrideWithoutInvoice(t *testing.T) {
	record := entity.BillRecord{Template: constants.TemplateGeneric, Date: "2026-08-28"}

	record, out := buildOutput(record, "", "MANUAL-SN-001")

	assert.Equal(t, "MANUAL-SN-001", record.SerialNumber)
	printed, ok := out.(entity.BillRecord)
	require.True(t, ok)
	assert.Equal(t, "MANUAL-SN-001", printed.SerialNumber)
}

func TestBuildOutputInvoicePayload(t *testing.T) {
	record := entity.BillRecord{
		BillFields: entity.BillFields{AssetCost: 11800, AssetCategory: "Refrigerator"},
		Template:   constants.TemplateGeneric,
		Date:       "2026-08-28",
	}

	record, out := buildOutput(record, "INV-2026-0042", "SN-42")

	assert.Equal(t, "SN-42", record.SerialNumber)
	inv, ok := out.(billing.Invoice)
	require.True(t, ok)
	assert.Equal(t, "INV-2026-0042", inv.InvoiceNumber)
	assert.Equal(t, "SN-42", inv.Record.SerialNumber)
}
