package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"marnthara/collections"
	"marnthara/order"
	"marnthara/services"
	"marnthara/store"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// snapshot returns a copy of the order's current state.
func snapshot(ctx context.Context, orders *OrderStores, id string) (*order.Order, error) {
	var o *order.Order
	err := orders.With(ctx, id, func(s *store.Store) error {
		var err error
		o, err = order.Clone(s.GetState())
		return err
	})
	return o, err
}

// HandleSummaryText returns the plain-text summary for messaging apps.
// Route: GET /api/orders/{id}/summary.txt
func HandleSummaryText(orders *OrderStores) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		o, err := snapshot(e.Request.Context(), orders, e.Request.PathValue("id"))
		if err != nil {
			return orderError(e, err)
		}
		return e.String(http.StatusOK, services.GenerateTextSummary(o))
	}
}

// HandleSummaryHTML renders the room-by-room summary as an HTML fragment.
// Route: GET /api/orders/{id}/summary
func HandleSummaryHTML(orders *OrderStores) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		o, err := snapshot(e.Request.Context(), orders, e.Request.PathValue("id"))
		if err != nil {
			return orderError(e, err)
		}
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return summaryPage(o).Render(e.Request.Context(), e.Response)
	}
}

// summaryPage lists each active room with its priced lines and the order
// totals.
func summaryPage(o *order.Order) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		esc := templ.EscapeString[string]

		b.WriteString(`<section class="summary">`)
		fmt.Fprintf(&b, `<h2>%s</h2>`, esc(o.CustomerName))
		for _, room := range o.Rooms {
			if room.IsSuspended {
				continue
			}
			var rows strings.Builder
			for _, it := range room.Items {
				line, ok := services.DescribeItem(it)
				if !ok {
					continue
				}
				fmt.Fprintf(&rows, `<tr><td>%s</td><td>%s</td><td class="num">%s</td></tr>`,
					esc(line.Name), esc(line.Details), services.FormatBaht(line.Price))
			}
			if rows.Len() == 0 {
				continue
			}
			fmt.Fprintf(&b, `<h3>%s</h3><table>%s`, esc(room.Name), rows.String())
			fmt.Fprintf(&b, `<tr class="room-total"><td colspan="2">รวม</td><td class="num">%s</td></tr></table>`,
				services.FormatBaht(services.CalcRoomTotal(room)))
		}

		t := services.CalcOrderTotals(o, 0)
		b.WriteString(`<dl class="totals">`)
		fmt.Fprintf(&b, `<dt>ยอดรวม</dt><dd>%s</dd>`, services.FormatBaht(t.Subtotal))
		if t.DiscountAmount > 0 {
			fmt.Fprintf(&b, `<dt>ส่วนลด</dt><dd>-%s</dd>`, services.FormatBaht(t.DiscountAmount))
		}
		fmt.Fprintf(&b, `<dt>ยอดสุทธิ</dt><dd>%s</dd>`, services.FormatBaht(t.GrandTotal))
		b.WriteString(`</dl></section>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// HandleOverview returns the per-category breakdown.
// Route: GET /api/orders/{id}/overview
func HandleOverview(orders *OrderStores) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		o, err := snapshot(e.Request.Context(), orders, e.Request.PathValue("id"))
		if err != nil {
			return orderError(e, err)
		}
		return e.JSON(http.StatusOK, services.CalcOverview(o))
	}
}

// buildQuoteData loads the order and its quote number.
func buildQuoteData(e *core.RequestEvent, app core.App, orders *OrderStores, shop services.ShopInfo) (services.QuoteData, error) {
	id := e.Request.PathValue("id")
	o, err := snapshot(e.Request.Context(), orders, id)
	if err != nil {
		return services.QuoteData{}, err
	}
	record, err := app.FindRecordById(collections.OrdersCollection, id)
	if err != nil {
		return services.QuoteData{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return services.BuildQuoteData(o, shop, record.GetString("quote_number"), time.Now()), nil
}

func quoteFilename(data services.QuoteData, ext string) string {
	name := data.QuoteNumber
	if name == "" {
		name = "quotation"
	}
	return fmt.Sprintf("%s.%s", sanitizeFilename(name), ext)
}

// HandleExportPDF downloads the quotation as a PDF.
// Route: GET /api/orders/{id}/export/pdf
func HandleExportPDF(app core.App, orders *OrderStores, shop services.ShopInfo, opts services.PDFOptions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildQuoteData(e, app, orders, shop)
		if err != nil {
			return orderError(e, err)
		}
		pdfBytes, err := services.GenerateQuotePDF(data, opts)
		if err != nil {
			logger.Error().Err(err).Msg("export_pdf: generate")
			return errorJSON(e, http.StatusInternalServerError, "Failed to generate PDF file", nil)
		}
		return attachment(e, "application/pdf", quoteFilename(data, "pdf"), pdfBytes)
	}
}

// HandleExportExcel downloads the quotation as an XLSX workbook.
// Route: GET /api/orders/{id}/export/excel
func HandleExportExcel(app core.App, orders *OrderStores, shop services.ShopInfo) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildQuoteData(e, app, orders, shop)
		if err != nil {
			return orderError(e, err)
		}
		xlsxBytes, err := services.GenerateQuoteExcel(data)
		if err != nil {
			logger.Error().Err(err).Msg("export_excel: generate")
			return errorJSON(e, http.StatusInternalServerError, "Failed to generate Excel file", nil)
		}
		return attachment(e, xlsxContentType, quoteFilename(data, "xlsx"), xlsxBytes)
	}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
