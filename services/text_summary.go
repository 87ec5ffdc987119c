package services

import (
	"fmt"
	"strconv"
	"strings"

	"marnthara/order"
)

// ItemLine is a priced, human-readable description of one item.
type ItemLine struct {
	Name    string
	Details string
	Price   float64
}

// DescribeItem returns the summary line for an active, configured item. The
// boolean is false for placeholders, unknown categories and suspended items.
func DescribeItem(it *order.Item) (ItemLine, bool) {
	if it == nil || it.IsSuspended || !it.Type.Valid() {
		return ItemLine{}, false
	}
	line := ItemLine{Name: it.DisplayName()}
	width := FormatDecimal(float64(it.WidthM), 2)
	height := FormatDecimal(float64(it.HeightM), 2)

	switch it.Kind() {
	case order.KindSet:
		p := CalcSetPrice(it)
		var style, variant string
		if s := it.Set(); s != nil {
			style, variant = s.Style, s.FabricVariant
		}
		line.Price = p.Total
		line.Details = fmt.Sprintf("%sx%s ม. (%s, %s)", width, height, style, variant)
	case order.KindWallpaper:
		p := CalcWallpaperPrice(it)
		line.Price = p.Total
		line.Details = fmt.Sprintf("สูง %s ม., กว้าง %s ม. (%d ม้วน)",
			height, FormatDecimal(p.TotalWidth, 2), p.Rolls)
	case order.KindAreaBased:
		p := CalcAreaBasedPrice(it)
		line.Price = p.Total
		line.Details = fmt.Sprintf("%sx%s ม. (%s หลา)", width, height, formatPlain(p.Sqyd))
	}
	return line, true
}

// GenerateTextSummary renders the order as a plain-text message suitable for
// chat apps. Suspended rooms and items are left out.
func GenerateTextSummary(o *order.Order) string {
	var b strings.Builder
	b.WriteString("สรุปรายการ:\n")
	if o == nil {
		o = order.Default()
	}

	var subtotal float64
	for _, room := range o.Rooms {
		if room.IsSuspended {
			continue
		}
		fmt.Fprintf(&b, "\n*%s*:\n", room.Name)
		var roomTotal float64
		for _, it := range room.Items {
			line, ok := DescribeItem(it)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "  - %s: %s = %s บ.\n", line.Name, line.Details, FormatBaht(line.Price))
			roomTotal += line.Price
		}
		fmt.Fprintf(&b, "  _ยอดรวม %s: %s บ._\n", room.Name, FormatBaht(roomTotal))
		subtotal += roomTotal
	}

	b.WriteString("\n--------------------\n")
	fmt.Fprintf(&b, "*ยอดรวม (ก่อนส่วนลด): %s บ.*\n", FormatBaht(subtotal))

	var discount float64
	if d := o.Discount; d.Value > 0 {
		switch d.Type {
		case order.DiscountPercent:
			discount = subtotal * d.Value / 100
			fmt.Fprintf(&b, "*ส่วนลด %s%%: -%s บ.*\n", formatPlain(d.Value), FormatBaht(discount))
		case order.DiscountAmount:
			discount = d.Value
			fmt.Fprintf(&b, "*ส่วนลด: -%s บ.*\n", FormatBaht(discount))
		}
	}
	fmt.Fprintf(&b, "*ยอดสุทธิ: %s บ.*\n", FormatBaht(subtotal-discount))
	return b.String()
}

// formatPlain prints v with the fewest digits that round-trip, e.g. 1.5 or 10.
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
