package words

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero Rupees Only"},
		{"one", 1, "One Rupees Only"},
		{"teens", 15, "Fifteen Rupees Only"},
		{"round tens", 40, "Forty Rupees Only"},
		{"tens and ones", 21, "Twenty One Rupees Only"},
		{"hundred", 100, "One Hundred Rupees Only"},
		{"hundreds with remainder", 567, "Five Hundred Sixty Seven Rupees Only"},
		{"thousand", 1000, "One Thousand Rupees Only"},
		{"lakh", 100000, "One Lakh Rupees Only"},
		{"crore", 10000000, "One Crore Rupees Only"},
		{"all groups", 12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{"lakh with paise", 1234567.89, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees And Eighty Nine Paise"},
		{"rupees and paise", 56.78, "Fifty Six Rupees And Seventy Eight Paise"},
		{"large crore group", 2500000000, "Two Hundred Fifty Crore Rupees Only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromAmount(tt.amount))
		})
	}
}

// A paise-only amount carries no "Only" suffix. That asymmetry is the
// specified behavior of the billing system this replaces.
func TestFromAmountPaiseOnly(t *testing.T) {
	assert.Equal(t, "Fifty Paise", FromAmount(0.50))
	assert.Equal(t, "Five Paise", FromAmount(0.05))
	assert.Equal(t, "Nineteen Paise", FromAmount(0.19))
}

func TestFromAmountInvalidInput(t *testing.T) {
	assert.Equal(t, "", FromAmount(-1))
	assert.Equal(t, "", FromAmount(-0.01))
	assert.Equal(t, "", FromAmount(math.NaN()))
	assert.Equal(t, "", FromAmount(math.Inf(1)))
}
