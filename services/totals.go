package services

import "marnthara/order"

// CalcOrderTotal sums the prices of every active item in every active room.
// A suspended room excludes all of its items whatever their own flags.
func CalcOrderTotal(o *order.Order) float64 {
	if o == nil {
		return 0
	}
	var total float64
	for _, room := range o.Rooms {
		total += CalcRoomTotal(room)
	}
	return total
}

// CalcRoomTotal sums the active items of a room; a suspended room is zero.
func CalcRoomTotal(room *order.Room) float64 {
	if room == nil || room.IsSuspended {
		return 0
	}
	var total float64
	for _, it := range room.Items {
		if it == nil || it.IsSuspended {
			continue
		}
		total += CalcItemTotal(it)
	}
	return total
}

// CalcDiscountAmount returns the amount taken off subtotal by d.
func CalcDiscountAmount(subtotal float64, d order.Discount) float64 {
	switch d.Type {
	case order.DiscountPercent:
		return subtotal * d.Value / 100
	case order.DiscountAmount:
		return d.Value
	}
	return 0
}

// ApplyDiscount returns subtotal less the discount. The result is not floored
// at zero.
func ApplyDiscount(subtotal float64, d order.Discount) float64 {
	return subtotal - CalcDiscountAmount(subtotal, d)
}

// OrderTotals holds the figures shown in summaries and quotations.
type OrderTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	GrandTotal     float64 `json:"grand_total"`
	VATRate        float64 `json:"vat_rate"`
	VATAmount      float64 `json:"vat_amount"`
	TotalWithVAT   float64 `json:"total_with_vat"`
}

// CalcOrderTotals computes subtotal, discount and grand total. VAT is only
// filled in when vatRate is positive.
func CalcOrderTotals(o *order.Order, vatRate float64) OrderTotals {
	t := OrderTotals{Subtotal: CalcOrderTotal(o)}
	if o != nil {
		t.DiscountAmount = CalcDiscountAmount(t.Subtotal, o.Discount)
	}
	t.GrandTotal = t.Subtotal - t.DiscountAmount
	t.TotalWithVAT = t.GrandTotal
	if vatRate > 0 {
		t.VATRate = vatRate
		t.VATAmount = t.GrandTotal * vatRate
		t.TotalWithVAT = t.GrandTotal + t.VATAmount
	}
	return t
}

// CategorySummary counts and totals the active items of one category.
type CategorySummary struct {
	Category order.Category `json:"type"`
	Name     string         `json:"name"`
	Count    int            `json:"count"`
	Total    float64        `json:"total"`
}

// Overview is the per-category breakdown of an order.
type Overview struct {
	ActiveRooms   int               `json:"active_rooms"`
	Categories    []CategorySummary `json:"categories"`
	FabricYardage float64           `json:"fabric_yardage"`
}

// CalcOverview summarizes active, configured items by category in menu
// order and estimates the total curtain fabric in yards.
func CalcOverview(o *order.Order) Overview {
	var ov Overview
	if o == nil {
		return ov
	}
	byType := make(map[order.Category]*CategorySummary)
	for _, room := range o.Rooms {
		if room.IsSuspended {
			continue
		}
		ov.ActiveRooms++
		for _, it := range room.Items {
			if it.IsSuspended || !it.Type.Valid() {
				continue
			}
			s, ok := byType[it.Type]
			if !ok {
				s = &CategorySummary{Category: it.Type, Name: it.Type.Name()}
				byType[it.Type] = s
			}
			s.Count++
			s.Total += CalcItemTotal(it)
			if spec := it.Set(); spec != nil {
				ov.FabricYardage += CalcFabricYardage(spec.Style, float64(it.WidthM))
			}
		}
	}
	for _, t := range order.ItemTypes {
		if s, ok := byType[t.Category]; ok {
			ov.Categories = append(ov.Categories, *s)
		}
	}
	return ov
}
