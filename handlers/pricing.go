package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"marnthara/order"
	"marnthara/services"
)

// priceResponse is the total of one item with the calculator breakdown.
type priceResponse struct {
	Type      order.Category `json:"type"`
	Name      string         `json:"name"`
	Total     float64        `json:"total"`
	Breakdown any            `json:"breakdown,omitempty"`
}

// HandlePrice prices a single item sent as JSON. Unknown categories and
// placeholders price at zero.
// Route: POST /api/price
func HandlePrice() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var it order.Item
		if err := e.BindBody(&it); err != nil {
			return errorJSON(e, http.StatusBadRequest, "invalid request body", err.Error())
		}

		resp := priceResponse{Type: it.Type, Name: it.DisplayName()}
		switch it.Kind() {
		case order.KindSet:
			p := services.CalcSetPrice(&it)
			resp.Total, resp.Breakdown = p.Total, p
		case order.KindWallpaper:
			p := services.CalcWallpaperPrice(&it)
			resp.Total, resp.Breakdown = p.Total, p
		case order.KindAreaBased:
			p := services.CalcAreaBasedPrice(&it)
			resp.Total, resp.Breakdown = p.Total, p
		}
		return e.JSON(http.StatusOK, resp)
	}
}

// HandlePricingOptions returns the price lists and menu options.
// Route: GET /api/pricing/options
func HandlePricingOptions() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, services.AllPricingOptions())
	}
}
