// Package services provides pricing calculation functions for quote items
// together with the summaries and documents built from them.
package services

import (
	"math"

	"marnthara/order"
)

// Pricing constants.
const (
	MetersToYards    = 1.09361
	SqmToSqyd        = 1.19599
	SetMinimumPrice  = 1000.0
	WallpaperRollW   = 0.53
	DefaultInstallPR = 300.0
)

// HeightRule adds AddPerM to the per-meter price when the height is strictly
// greater than Threshold.
type HeightRule struct {
	Threshold float64
	AddPerM   float64
}

// HeightSurcharges are checked in descending threshold order.
var HeightSurcharges = []HeightRule{
	{Threshold: 3.2, AddPerM: 300},
	{Threshold: 2.8, AddPerM: 200},
	{Threshold: 2.5, AddPerM: 100},
}

// StyleSurcharges is the fixed per-meter add-on by curtain style.
var StyleSurcharges = map[string]float64{
	order.StyleWave:    200,
	order.StyleGrommet: 0,
	order.StylePleat:   0,
	order.StyleRoman:   0,
	order.StylePanel:   0,
	order.StyleLouis:   0,
}

// CalcItemTotal returns the total of any item using the calculator matching
// its category. Placeholders and unknown categories contribute zero.
func CalcItemTotal(it *order.Item) float64 {
	if it == nil {
		return 0
	}
	switch it.Kind() {
	case order.KindSet:
		return CalcSetPrice(it).Total
	case order.KindWallpaper:
		return CalcWallpaperPrice(it).Total
	case order.KindAreaBased:
		return CalcAreaBasedPrice(it).Total
	}
	return 0
}

// roundTo10 rounds to the nearest multiple of ten.
func roundTo10(v float64) float64 {
	return math.Round(v/10) * 10
}
