package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// minFieldLength is the shortest plausible value for free-form fields like
// serial numbers; anything shorter is treated as an accidental match.
const minFieldLength = 5

// firstMatch returns the first capture group of re in text, trimmed, or ""
// when there is no match.
func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// betweenLabels returns the trimmed text between the first occurrence of
// start and the next occurrence of end after it. Used for multi-line fields
// where a pattern cannot safely describe the embedded punctuation.
func betweenLabels(text, start, end string) (string, bool) {
	si := strings.Index(text, start)
	if si == -1 {
		return "", false
	}
	rest := text[si+len(start):]
	ei := strings.Index(rest, end)
	if ei == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:ei]), true
}

// scanAmountAfter locates label, skips past every non-digit character that
// follows it (colons, tabs, line breaks, currency marks), then accumulates
// a run of digits, commas and at most one decimal point, so a full stop
// ending the sentence after the amount is not swallowed. Tolerates any
// separator between label and value without needing an exact pattern for
// the gap.
func scanAmountAfter(text, label string) float64 {
	idx := strings.Index(text, label)
	if idx == -1 {
		return 0
	}
	i := idx + len(label)
	for i < len(text) && (text[i] < '0' || text[i] > '9') {
		i++
	}
	start := i
	dotted := false
	for i < len(text) {
		c := text[i]
		if c >= '0' && c <= '9' || c == ',' {
			i++
			continue
		}
		if c == '.' && !dotted {
			dotted = true
			i++
			continue
		}
		break
	}
	if start == i {
		return 0
	}
	return parseAmount(text[start:i])
}

// parseAmount parses a human-formatted amount ("24,990.00") by stripping
// commas. Unparseable or negative input yields 0.
func parseAmount(raw string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// stripTrailing removes one spurious trailing literal bled in from an
// adjacent column header (e.g. the "E" of a following label). Strips at
// most once, and only when present.
func stripTrailing(value, noise string) string {
	if strings.HasSuffix(value, noise) {
		return strings.TrimSpace(strings.TrimSuffix(value, noise))
	}
	return value
}

// rejectSentinel discards a value that exactly equals a known noise token
// (case-insensitive) or is shorter than the minimum plausible length.
func rejectSentinel(value, noise string) string {
	v := strings.TrimSpace(value)
	if strings.EqualFold(v, noise) || len(v) < minFieldLength {
		return ""
	}
	return v
}

// Generic address pattern: an optionally-prefixed "Address" label up to the
// first 6-digit postal code. Shared by the IDFC fallback and the generic
// template.
var (
	addressRe      = regexp.MustCompile(`(?is)(?:Customer )?Address:?[ \t]*(.*?\d{6})`)
	addressLabelRe = regexp.MustCompile(`(?i)^(?:Customer )?Address:?[ \t]*`)
)

func genericAddress(text string) string {
	addr := firstMatch(addressRe, text)
	if addr == "" {
		return ""
	}
	return strings.TrimSpace(addressLabelRe.ReplaceAllString(addr, ""))
}
