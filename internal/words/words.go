// Package words renders rupee amounts as Indian-English phrases using
// crore/lakh/thousand grouping.
package words

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ones = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
var teens = [...]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
var tens = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

const (
	croreUnit = 10_000_000
	lakhUnit  = 100_000
)

// FromAmount converts an amount into "Rupees ... Paise ..." phrasing.
// Zero yields "Zero Rupees Only"; negative or non-finite input yields "".
// A paise-only amount carries no "Only" suffix; that asymmetry matches the
// billing system this replaces and is kept deliberately.
func FromAmount(amount float64) string {
	if amount == 0 {
		return "Zero Rupees Only"
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ""
	}

	totalPaise := decimal.NewFromFloat(amount).Round(2).Shift(2).IntPart()
	rupees := totalPaise / 100
	paise := totalPaise % 100

	var groups []string
	if crores := rupees / croreUnit; crores > 0 {
		groups = append(groups, convertHundreds(crores)+" Crore")
	}
	rupees %= croreUnit
	if lakhs := rupees / lakhUnit; lakhs > 0 {
		groups = append(groups, convertHundreds(lakhs)+" Lakh")
	}
	rupees %= lakhUnit
	if thousands := rupees / 1000; thousands > 0 {
		groups = append(groups, convertHundreds(thousands)+" Thousand")
	}
	rupees %= 1000
	if rupees > 0 {
		groups = append(groups, convertHundreds(rupees))
	}

	rupeePart := strings.Join(groups, " ")
	if rupeePart != "" {
		rupeePart += " Rupees"
	}

	paisePart := ""
	if paise > 0 {
		paisePart = convertTens(paise) + " Paise"
	}

	switch {
	case rupeePart != "" && paisePart != "":
		return rupeePart + " And " + paisePart
	case rupeePart != "":
		return rupeePart + " Only"
	default:
		return paisePart
	}
}

// convertHundreds spells out a group. Groups are normally 0-999 but the
// crore group is unbounded, so the hundreds digit recurses.
func convertHundreds(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, convertHundreds(n/100)+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, convertTens(n))
	}
	return strings.Join(parts, " ")
}

// convertTens spells out 1-99 using the irregular teens table.
func convertTens(n int64) string {
	switch {
	case n >= 20:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " " + ones[n%10]
	case n >= 10:
		return teens[n-10]
	case n > 0:
		return ones[n]
	default:
		return ""
	}
}
