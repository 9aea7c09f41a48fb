package model

import (
	"sort"
	"strings"
)

// DefaultDigits is the decimal digit count assumed for symbols missing from the table.
const DefaultDigits = 5

// pointDigits maps an instrument code to the power-of-ten exponent used to scale
// its integer-encoded prices to decimal.
var pointDigits = map[string]int{
	"EURUSD": 5,
	"GBPUSD": 5,
	"USDJPY": 3,
	"USDCHF": 5,
	"AUDUSD": 5,
	"USDCAD": 5,
	"XAUUSD": 5,
}

// Points returns the decimal-scaling exponent for a symbol. Unknown symbols get
// DefaultDigits.
func Points(symbol string) int {
	if d, ok := pointDigits[strings.ToUpper(symbol)]; ok {
		return d
	}
	return DefaultDigits
}

// Symbols lists the known instrument codes, sorted.
func Symbols() []string {
	out := make([]string, 0, len(pointDigits))
	for s := range pointDigits {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
