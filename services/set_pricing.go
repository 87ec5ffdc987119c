package services

import (
	"math"
	"strings"

	"marnthara/order"
)

// SetPrice is the price breakdown of a curtain set.
type SetPrice struct {
	Total    float64 `json:"total"`
	Opaque   float64 `json:"opaque"`
	Sheer    float64 `json:"sheer"`
	Louis    float64 `json:"louis"`
	Yardage  float64 `json:"yardage"`
	Grommets int     `json:"grommets"`
}

// styleMultiplier returns the fabric fullness for a style. Panel curtains
// and unknown styles return 0.
func styleMultiplier(style string) float64 {
	switch style {
	case order.StyleWave, order.StyleGrommet, order.StylePleat, order.StyleLouis:
		return 2.5
	case order.StyleRoman:
		return 1.2
	}
	return 0
}

func heightSurcharge(height float64) float64 {
	for _, rule := range HeightSurcharges {
		if height > rule.Threshold {
			return rule.AddPerM
		}
	}
	return 0
}

// CalcFabricYardage returns the yards of fabric needed for a curtain width.
func CalcFabricYardage(style string, width float64) float64 {
	if width <= 0 {
		return 0
	}
	mult := styleMultiplier(style)
	if mult == 0 {
		return 0
	}
	return width * mult * MetersToYards
}

// CalcGrommets returns the number of grommet rings for a width. The count is
// always even and never below ceil(width*4)*2.
func CalcGrommets(width float64) int {
	if width <= 0 {
		return 0
	}
	fabricWidth := width * 2.5
	grommets := int(math.Ceil(fabricWidth * 100 / 12))
	if grommets%2 != 0 {
		grommets++
	}
	floor := int(math.Ceil(width*4)) * 2
	if floor > grommets {
		grommets = floor
	}
	return grommets
}

// CalcComponentPrice prices one fabric component of a set.
func CalcComponentPrice(style string, width, height, pricePerM float64) float64 {
	if width <= 0 || height <= 0 || pricePerM <= 0 {
		return 0
	}
	if style == order.StylePanel {
		return roundTo10(width * pricePerM)
	}
	mult := styleMultiplier(style)
	if mult == 0 {
		return 0
	}
	perM := pricePerM + StyleSurcharges[style] + heightSurcharge(height)
	return roundTo10(perM * width * mult)
}

// CalcSetPrice prices a curtain set. Suspended or incomplete items are zero.
// A positive total below SetMinimumPrice is raised to it.
func CalcSetPrice(it *order.Item) SetPrice {
	if it == nil || it.IsSuspended {
		return SetPrice{}
	}
	spec := it.Set()
	if spec == nil {
		return SetPrice{}
	}

	style := spec.Style
	if style == "" {
		style = order.StyleWave
	}
	variant := spec.FabricVariant
	if variant == "" {
		variant = order.FabricOpaque
	}
	width := float64(it.WidthM)
	height := float64(it.HeightM)

	var p SetPrice
	if style == order.StyleLouis {
		if louisPerM := float64(spec.LouisPricePerM); width > 0 && louisPerM > 0 {
			p.Louis = roundTo10(louisPerM * width)
		}
	}
	if strings.Contains(variant, order.FabricOpaque) {
		p.Opaque = CalcComponentPrice(style, width, height, float64(spec.PricePerMRaw))
	}
	if strings.Contains(variant, order.FabricSheer) {
		p.Sheer = CalcComponentPrice(style, width, height, float64(spec.SheerPricePerM))
	}

	p.Total = p.Opaque + p.Sheer + p.Louis
	if p.Total > 0 && p.Total < SetMinimumPrice {
		p.Total = SetMinimumPrice
	}
	p.Yardage = CalcFabricYardage(style, width)
	if style == order.StyleGrommet {
		p.Grommets = CalcGrommets(width)
	}
	return p
}
