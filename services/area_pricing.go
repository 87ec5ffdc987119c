package services

import (
	"math"

	"marnthara/order"
)

// AreaPrice is the price breakdown of blinds, partitions and screens.
type AreaPrice struct {
	Total float64 `json:"total"`
	Sqm   float64 `json:"sqm"`
	Sqyd  float64 `json:"sqyd"`
}

// CalcBillableSqyd converts square meters to billable square yards: at least
// one, otherwise rounded up to the next half yard.
func CalcBillableSqyd(sqm float64) float64 {
	sqyd := sqm * SqmToSqyd
	if sqyd < 1 {
		return 1
	}
	return math.Ceil(sqyd*2) / 2
}

// CalcAreaBasedPrice prices any of the six area-based categories.
func CalcAreaBasedPrice(it *order.Item) AreaPrice {
	if it == nil || it.IsSuspended {
		return AreaPrice{}
	}
	spec := it.Area()
	if spec == nil {
		return AreaPrice{}
	}
	width := float64(it.WidthM)
	height := float64(it.HeightM)
	price := float64(spec.PriceSqyd)
	if width <= 0 || height <= 0 || price <= 0 {
		return AreaPrice{}
	}

	sqm := width * height
	sqyd := CalcBillableSqyd(sqm)
	return AreaPrice{
		Total: math.Round(sqyd * price),
		Sqm:   sqm,
		Sqyd:  sqyd,
	}
}
