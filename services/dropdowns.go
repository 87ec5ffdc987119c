package services

import "marnthara/order"

// PriceOption is one entry of a per-metre price dropdown.
type PriceOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FabricPrices lists the selectable per-metre prices for opaque fabric.
var FabricPrices = priceRange(1000, 3000, 100)

// SheerPrices lists the selectable per-metre prices for sheer fabric.
var SheerPrices = priceRange(1000, 1500, 100)

// LouisPrices lists the selectable per-metre prices for louis valances.
var LouisPrices = priceRange(2200, 3500, 100)

// StyleOptions lists the curtain styles in menu order.
var StyleOptions = []string{
	order.StyleWave,
	order.StyleGrommet,
	order.StylePleat,
	order.StyleRoman,
	order.StylePanel,
	order.StyleLouis,
}

// FabricVariantOptions lists the fabric combinations of a set.
var FabricVariantOptions = []string{
	order.FabricOpaque,
	order.FabricSheer,
	order.FabricOpaque + "&" + order.FabricSheer,
}

// PricingOptions groups every dropdown the item editor needs.
type PricingOptions struct {
	Fabric         []PriceOption    `json:"fabric"`
	Sheer          []PriceOption    `json:"sheer"`
	Louis          []PriceOption    `json:"louis"`
	Styles         []string         `json:"styles"`
	FabricVariants []string         `json:"fabric_variants"`
	ItemTypes      []order.TypeInfo `json:"item_types"`
}

// PriceOptions converts a price list to labelled options.
func PriceOptions(prices []int) []PriceOption {
	opts := make([]PriceOption, len(prices))
	for i, p := range prices {
		opts[i] = PriceOption{Value: p, Label: FormatBaht(float64(p))}
	}
	return opts
}

// AllPricingOptions returns the dropdown contents for the item editor.
func AllPricingOptions() PricingOptions {
	return PricingOptions{
		Fabric:         PriceOptions(FabricPrices),
		Sheer:          PriceOptions(SheerPrices),
		Louis:          PriceOptions(LouisPrices),
		Styles:         StyleOptions,
		FabricVariants: FabricVariantOptions,
		ItemTypes:      order.ItemTypes,
	}
}

func priceRange(from, to, step int) []int {
	var out []int
	for p := from; p <= to; p += step {
		out = append(out, p)
	}
	return out
}
