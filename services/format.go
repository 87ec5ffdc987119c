package services

import (
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var thaiPrinter = message.NewPrinter(language.Thai)

// FormatThaiNumber formats n with Thai digit grouping and a fixed number of
// decimals. Non-finite values render as "0".
func FormatThaiNumber(n float64, digits int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	if digits < 0 {
		digits = 0
	}
	return thaiPrinter.Sprintf("%.*f", digits, n)
}

// FormatDecimal formats n with comma grouping and up to three fixed decimals.
func FormatDecimal(n float64, digits int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "0"
	}
	switch {
	case digits <= 0:
		return humanize.FormatFloat("#,###.", n)
	case digits == 1:
		return humanize.FormatFloat("#,###.#", n)
	case digits == 2:
		return humanize.FormatFloat("#,###.##", n)
	}
	return humanize.FormatFloat("#,###.###", n)
}

// FormatBaht formats a whole-baht amount, e.g. 12,500.
func FormatBaht(n float64) string {
	return FormatThaiNumber(n, 0)
}
