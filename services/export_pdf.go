package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

const quoteFontFamily = "quote"

// PDFOptions controls how a quotation PDF is rendered.
type PDFOptions struct {
	// FontPath points at a TTF with Thai glyphs. Without it the document is
	// rendered with built-in fonts and Latin-only text.
	FontPath string
}

// GenerateQuotePDF renders a quotation with maroto/v2 and returns the raw
// PDF bytes.
func GenerateQuotePDF(data QuoteData, opts PDFOptions) ([]byte, error) {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		})

	thai := opts.FontPath != ""
	if thai {
		fonts, err := repository.New().
			AddUTF8Font(quoteFontFamily, fontstyle.Normal, opts.FontPath).
			AddUTF8Font(quoteFontFamily, fontstyle.Bold, opts.FontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("load quote font: %w", err)
		}
		b = b.WithCustomFonts(fonts).WithDefaultFont(&props.Font{Family: quoteFontFamily})
	}

	m := maroto.New(b.Build())
	r := quoteRenderer{m: m, thai: thai}

	r.header(data)
	r.tableHeader()
	for _, l := range data.Lines {
		r.line(l)
	}
	r.summary(data)
	r.terms(data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

type quoteRenderer struct {
	m    core.Maroto
	thai bool
}

// pick returns th when a Thai font is loaded and en otherwise.
func (r quoteRenderer) pick(th, en string) string {
	if r.thai && th != "" {
		return th
	}
	return latinOnly(en)
}

func (r quoteRenderer) header(data QuoteData) {
	grey := &props.Color{Red: 80, Green: 80, Blue: 80}

	r.m.AddRows(
		row.New(10).Add(
			col.New(8).Add(text.New(r.pick(data.Shop.Name, "Quotation"), props.Text{
				Size:  14,
				Style: fontstyle.Bold,
			})),
			col.New(4).Add(text.New("QUOTATION", props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
	)
	if r.thai {
		r.m.AddRows(
			row.New(5).Add(col.New(12).Add(text.New(data.Shop.Address, props.Text{Size: 8, Color: grey}))),
			row.New(5).Add(col.New(12).Add(text.New(data.Shop.Phone, props.Text{Size: 8, Color: grey}))),
		)
	}
	if data.Shop.TaxID != "" {
		r.m.AddRows(row.New(5).Add(col.New(12).Add(
			text.New("Tax ID: "+data.Shop.TaxID, props.Text{Size: 8, Color: grey}),
		)))
	}

	r.m.AddRows(row.New(4))
	r.m.AddRows(
		row.New(6).Add(
			col.New(8).Add(text.New("Customer: "+r.pick(data.CustomerName, data.CustomerName), props.Text{Size: 9})),
			col.New(4).Add(text.New("No: "+data.QuoteNumber, props.Text{Size: 9, Align: align.Right})),
		),
		row.New(6).Add(
			col.New(8).Add(text.New("Phone: "+data.CustomerPhone, props.Text{Size: 9})),
			col.New(4).Add(text.New("Date: "+data.Date, props.Text{Size: 9, Align: align.Right})),
		),
	)
	if r.thai && data.CustomerAddress != "" {
		r.m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Address: "+data.CustomerAddress, props.Text{Size: 9}),
		)))
	}
	r.m.AddRows(row.New(4))
}

func (r quoteRenderer) tableHeader() {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}

	r.m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(headerCell),
			col.New(5).Add(text.New("Description", headerTextLeft)).WithStyle(headerCell),
			col.New(2).Add(text.New("Qty", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(headerCell),
		),
	)
}

func (r quoteRenderer) line(l QuoteLine) {
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	desc := r.pick(l.Room+" / "+l.Name+" "+l.Details, l.Label+" "+l.Size)
	r.m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(l.Index, base)),
			col.New(5).Add(text.New(desc, left)),
			col.New(2).Add(text.New(formatQty(l.Qty)+" "+l.Unit, right)),
			col.New(2).Add(text.New(FormatThaiNumber(l.UnitPrice, 2), right)),
			col.New(2).Add(text.New(FormatThaiNumber(l.Amount, 2), right)),
		),
	)
}

func (r quoteRenderer) summary(data QuoteData) {
	r.m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	value := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	add := func(name string, amount float64) {
		r.m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(name, label)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatThaiNumber(amount, 2), value)).WithStyle(summaryCell),
			),
		)
	}

	t := data.Totals
	add("Subtotal", t.Subtotal)
	if t.DiscountAmount != 0 {
		add("Discount", -t.DiscountAmount)
	}
	add("Total", t.GrandTotal)
	if t.VATRate > 0 {
		add(fmt.Sprintf("VAT %s%%", formatPlain(math.Round(t.VATRate*10000)/100)), t.VATAmount)
		add("Grand Total", t.TotalWithVAT)
	}

	if r.thai {
		r.m.AddRows(row.New(7).Add(col.New(12).Add(
			text.New("("+data.AmountInWords+")", props.Text{Size: 9, Align: align.Right}),
		)))
	}
}

func (r quoteRenderer) terms(data QuoteData) {
	r.m.AddRows(row.New(6))
	small := props.Text{Size: 8, Color: &props.Color{Red: 100, Green: 100, Blue: 100}}

	if !r.thai {
		return
	}
	if data.Shop.PaymentTerms != "" {
		r.m.AddRows(row.New(5).Add(col.New(12).Add(text.New(data.Shop.PaymentTerms, small))))
	}
	if data.Shop.PriceValidity != "" {
		r.m.AddRows(row.New(5).Add(col.New(12).Add(text.New(data.Shop.PriceValidity, small))))
	}
	for _, n := range data.Shop.Notes {
		r.m.AddRows(row.New(5).Add(col.New(12).Add(text.New("- "+n, small))))
	}
}

// formatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

// latinOnly drops characters the built-in PDF fonts cannot draw.
func latinOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFF {
			return -1
		}
		return r
	}, s)
}
