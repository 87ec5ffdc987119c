package services

import (
	"fmt"
	"time"

	"marnthara/order"
)

// ShopInfo is the seller block printed on quotations.
type ShopInfo struct {
	Name          string
	Address       string
	Phone         string
	TaxID         string
	VATRate       float64
	PaymentTerms  string
	PriceValidity string
	Notes         []string
}

// QuoteLine is one priced row of a quotation.
type QuoteLine struct {
	Index     string
	Room      string
	Name      string // Thai item name
	Label     string // English item label
	Details   string // Thai dimensions and options
	Size      string // dimensions in Latin script
	Qty       float64
	Unit      string
	UnitPrice float64
	Amount    float64
}

// QuoteData holds everything a quotation document needs.
type QuoteData struct {
	Shop            ShopInfo
	QuoteNumber     string
	Date            string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	Lines           []QuoteLine
	Totals          OrderTotals
	AmountInWords   string
}

// BuildQuoteData flattens the active items of o into quotation lines and
// computes totals with the shop's VAT rate.
func BuildQuoteData(o *order.Order, shop ShopInfo, quoteNumber string, now time.Time) QuoteData {
	data := QuoteData{
		Shop:        shop,
		QuoteNumber: quoteNumber,
		Date:        now.Format("2006-01-02"),
	}
	if o == nil {
		return data
	}
	data.CustomerName = o.CustomerName
	data.CustomerPhone = o.CustomerPhone
	data.CustomerAddress = o.CustomerAddress

	n := 0
	for _, room := range o.Rooms {
		if room.IsSuspended {
			continue
		}
		for _, it := range room.Items {
			desc, ok := DescribeItem(it)
			if !ok {
				continue
			}
			n++
			line := QuoteLine{
				Index:   fmt.Sprintf("%d", n),
				Room:    room.Name,
				Name:    desc.Name,
				Label:   it.Type.Label(),
				Details: desc.Details,
				Amount:  desc.Price,
			}
			fillQuantity(&line, it)
			data.Lines = append(data.Lines, line)
		}
	}

	data.Totals = CalcOrderTotals(o, shop.VATRate)
	data.AmountInWords = BahtText(data.Totals.TotalWithVAT)
	return data
}

// fillQuantity sets the billed quantity, unit and unit price of a line.
func fillQuantity(line *QuoteLine, it *order.Item) {
	width := FormatDecimal(float64(it.WidthM), 2)
	height := FormatDecimal(float64(it.HeightM), 2)

	switch it.Kind() {
	case order.KindWallpaper:
		p := CalcWallpaperPrice(it)
		line.Size = fmt.Sprintf("%s x %s m", FormatDecimal(p.TotalWidth, 2), height)
		line.Qty, line.Unit = float64(p.Rolls), "roll"
	case order.KindAreaBased:
		p := CalcAreaBasedPrice(it)
		line.Size = fmt.Sprintf("%s x %s m", width, height)
		line.Qty, line.Unit = p.Sqyd, "sq.yd"
	default:
		line.Size = fmt.Sprintf("%s x %s m", width, height)
		line.Qty, line.Unit = 1, "set"
	}
	if line.Qty > 0 {
		line.UnitPrice = line.Amount / line.Qty
	}
}
