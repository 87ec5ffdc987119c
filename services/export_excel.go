package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const quoteSheet = "Quotation"

// GenerateQuoteExcel writes a quotation workbook and returns its bytes.
func GenerateQuoteExcel(data QuoteData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1]
	widths := []float64{6, 18, 22, 34, 10, 10, 14, 16}
	for i, c := range columns {
		if err := f.SetColWidth(quoteSheet, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	subtitleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 11}})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	lineStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create line style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		NumFmt: 4, // #,##0.00
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}
	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}
	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		NumFmt: 4,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-5) ───────────────────────────────────────────────

	merged := func(row int, value string, style int) error {
		start, end := fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)
		if err := f.MergeCell(quoteSheet, start, end); err != nil {
			return fmt.Errorf("merge row %d: %w", row, err)
		}
		f.SetCellValue(quoteSheet, start, sanitizeExcelCell(value))
		return f.SetCellStyle(quoteSheet, start, end, style)
	}

	title := data.Shop.Name
	if title == "" {
		title = quoteSheet
	}
	header := []struct {
		value string
		style int
	}{
		{title, titleStyle},
		{data.Shop.Address + " " + data.Shop.Phone, subtitleStyle},
		{"No: " + data.QuoteNumber + "    Date: " + data.Date, subtitleStyle},
		{"Customer: " + data.CustomerName + "    " + data.CustomerPhone, subtitleStyle},
		{data.CustomerAddress, subtitleStyle},
	}
	for i, h := range header {
		if err := merged(i+1, h.value, h.style); err != nil {
			return nil, err
		}
	}

	// ── Row 7: Column Headers ───────────────────────────────────────────

	headers := []string{"#", "Room", "Item", "Details", "Qty", "Unit", "Unit Price", "Amount"}
	for i, h := range headers {
		f.SetCellValue(quoteSheet, fmt.Sprintf("%s7", columns[i]), h)
	}
	f.SetCellStyle(quoteSheet, "A7", lastCol+"7", headerStyle)

	// ── Lines (starting row 8) ──────────────────────────────────────────

	row := 8
	for _, l := range data.Lines {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(quoteSheet, "A"+r, l.Index)
		f.SetCellValue(quoteSheet, "B"+r, sanitizeExcelCell(l.Room))
		f.SetCellValue(quoteSheet, "C"+r, l.Name)
		f.SetCellValue(quoteSheet, "D"+r, sanitizeExcelCell(l.Details))
		f.SetCellValue(quoteSheet, "E"+r, l.Qty)
		f.SetCellValue(quoteSheet, "F"+r, l.Unit)
		f.SetCellValue(quoteSheet, "G"+r, l.UnitPrice)
		f.SetCellValue(quoteSheet, "H"+r, l.Amount)
		f.SetCellStyle(quoteSheet, "A"+r, "F"+r, lineStyle)
		f.SetCellStyle(quoteSheet, "G"+r, "H"+r, moneyStyle)
		row++
	}

	// ── Summary Rows ────────────────────────────────────────────────────

	row++
	summary := func(label string, amount float64) {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(quoteSheet, "G"+r, label)
		f.SetCellStyle(quoteSheet, "G"+r, "G"+r, summaryLabelStyle)
		f.SetCellValue(quoteSheet, "H"+r, amount)
		f.SetCellStyle(quoteSheet, "H"+r, "H"+r, summaryValueStyle)
		row++
	}

	t := data.Totals
	summary("Subtotal", t.Subtotal)
	if t.DiscountAmount != 0 {
		summary("Discount", -t.DiscountAmount)
	}
	summary("Total", t.GrandTotal)
	if t.VATRate > 0 {
		summary("VAT", t.VATAmount)
		summary("Grand Total", t.TotalWithVAT)
	}
	f.SetCellValue(quoteSheet, fmt.Sprintf("D%d", row), data.AmountInWords)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
