package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katiyar-electronics/bill-engine/constants"
	"github.com/katiyar-electronics/bill-engine/internal/common"
)

type stubLookup struct {
	category constants.Category
	err      error
	calls    []string
}

func (s *stubLookup) Detect(_ context.Context, modelNumber string) (constants.Category, error) {
	s.calls = append(s.calls, modelNumber)
	return s.category, s.err
}

const genericLetter = "Customer Name: ARJUN SINGH Customer Address: 45 Mall Road Kanpur 208004\n" +
	"Manufacturer: LG Model: T70SPSF2Z Asset Category\n" +
	"Serial Number: WM12345678 A. Asset Cost : 18,500"

func TestProcessTextResolvesCategory(t *testing.T) {
	lookup := &stubLookup{category: constants.WashingMachine}
	p := NewProcessor(lookup, nil)
	p.now = func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) }

	record, err := p.ProcessText(context.Background(), genericLetter)
	require.NoError(t, err)

	assert.Equal(t, constants.TemplateGeneric, record.Template)
	assert.Equal(t, "ARJUN SINGH", record.CustomerName)
	assert.Equal(t, "T70SPSF2Z", record.Model)
	assert.Equal(t, "Washing Machine", record.AssetCategory)
	assert.Equal(t, 18500.0, record.AssetCost)
	assert.Equal(t, "2026-08-28", record.Date)
	assert.Equal(t, []string{"T70SPSF2Z"}, lookup.calls)
}

func TestProcessTextLookupFailureDegrades(t *testing.T) {
	lookup := &stubLookup{err: errors.New("quota exceeded")}
	p := NewProcessor(lookup, nil)

	record, err := p.ProcessText(context.Background(), genericLetter)
	require.NoError(t, err)

	assert.Equal(t, "", record.AssetCategory)
	assert.Equal(t, "ARJUN SINGH", record.CustomerName)
}

func TestProcessTextNoModelSkipsLookup(t *testing.T) {
	lookup := &stubLookup{category: constants.Television}
	p := NewProcessor(lookup, nil)

	record, err := p.ProcessText(context.Background(), "Customer Name: PRIYA SHARMA")
	require.NoError(t, err)

	assert.Empty(t, lookup.calls)
	assert.Equal(t, "", record.AssetCategory)
}

func TestProcessTextNilLookup(t *testing.T) {
	p := NewProcessor(nil, nil)

	record, err := p.ProcessText(context.Background(), genericLetter)
	require.NoError(t, err)
	assert.Equal(t, "", record.AssetCategory)
}

func TestProcessTextTemplateClassification(t *testing.T) {
	p := NewProcessor(nil, nil)

	hdb, err := p.ProcessText(context.Background(), "HDB FINANCIAL SERVICES sanction letter")
	require.NoError(t, err)
	assert.Equal(t, constants.TemplateHDB, hdb.Template)
	assert.True(t, hdb.FinanceFlag)

	idfc, err := p.ProcessText(context.Background(), "IDFC FIRST Bank approval letter")
	require.NoError(t, err)
	assert.Equal(t, constants.TemplateIDFC, idfc.Template)
	assert.False(t, idfc.FinanceFlag)
}

func TestProcessTextInvalidUTF8(t *testing.T) {
	p := NewProcessor(nil, nil)

	_, err := p.ProcessText(context.Background(), string([]byte{0xff, 0xfe, 0xfd}))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "EXTRACTION_ERROR", appErr.Code)
}
