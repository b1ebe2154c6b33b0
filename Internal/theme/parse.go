package theme

import (
	"strings"

	"github.com/shopspring/decimal"
)

// The theme source encodes every numeric field as a string, often with a
// leading '+'/'-' and sometimes comma grouping. One malformed field must
// never abort a batch, so all parsers degrade to zero.

func cleanNumeric(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "+")
	return s
}

// ParseRate parses a signed percentage field like "+5.32" or "-3.10".
func ParseRate(s string) float64 {
	cleaned := cleanNumeric(s)
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// ParseVolume parses an accumulated-volume field like "1,234,567".
func ParseVolume(s string) int64 {
	cleaned := cleanNumeric(s)
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.IntPart()
}

// ParsePrice parses a current-price field. Kiwoom signs the price with
// the day's direction ("+61500" / "-61500"); the sign is not part of the
// price itself.
func ParsePrice(s string) int64 {
	v := ParseVolume(s)
	if v < 0 {
		return -v
	}
	return v
}

// ParseCount parses a small integer field like a stock count.
func ParseCount(s string) int {
	return int(ParseVolume(s))
}
