package common

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds a value to 2 decimal places. All monetary and percentage
// figures produced by the analytics engine pass through this before leaving
// a calculator.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney formats a rupee amount with thousands separators, e.g. "₹123,456.78".
func FormatMoney(v float64) string {
	return "₹" + groupThousands(v, 2)
}

// FormatSignedMoney formats a rupee amount with an explicit sign.
func FormatSignedMoney(v float64) string {
	if v >= 0 {
		return "+₹" + groupThousands(v, 2)
	}
	return "-₹" + groupThousands(-v, 2)
}

// FormatPct formats a percentage with 2 decimal places.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatSignedPct formats a percentage with an explicit sign.
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatMarketCap formats a market capitalisation in crores (1 Cr = 1e7).
func FormatMarketCap(v float64) string {
	if v <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("₹%s Cr", groupThousands(math.Round(v/1e7), 0))
}

// groupThousands renders v with the given number of decimals and
// comma-grouped integer digits.
func groupThousands(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)
	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}

	out := sb.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
