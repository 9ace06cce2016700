package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katiyar-electronics/bill-engine/internal/entity"
)

func TestGenericExtract(t *testing.T) {
	text := loadFixture(t, "chola.txt")

	got := GenericExtractor{}.Extract(text)

	want := entity.BillFields{
		CustomerName:    "ARJUN SINGH",
		CustomerAddress: "45 Mall Road Kanpur Nagar 208004",
		Manufacturer:    "LG",
		Model:           "T70SPSF2Z 7.0Kg",
		SerialNumber:    "WM12345678",
		AssetCost:       18500,
	}
	assert.Equal(t, want, got)
}

func TestGenericNameSwallowsFollowingLabel(t *testing.T) {
	// The three-word name capture tends to pick up the "Customer" of a
	// following "Customer Address" label; it must be stripped.
	got := GenericExtractor{}.Extract("Customer Name: RAHUL VERMA Customer Address: 1 MG Road 208001")
	assert.Equal(t, "RAHUL VERMA", got.CustomerName)
}

func TestGenericExtractEmptyText(t *testing.T) {
	assert.Equal(t, entity.BillFields{}, GenericExtractor{}.Extract(""))
}

func TestGenericExtractUnrelatedText(t *testing.T) {
	got := GenericExtractor{}.Extract("an unrelated paragraph mentioning no labels")
	assert.Equal(t, entity.BillFields{}, got)
}
