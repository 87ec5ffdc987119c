package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"marnthara/services"
)

// HandleSubmit posts the order and its text summary to the configured
// webhook.
// Route: POST /api/orders/{id}/submit
func HandleSubmit(orders *OrderStores, client *services.WebhookClient) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		o, err := snapshot(e.Request.Context(), orders, id)
		if err != nil {
			return orderError(e, err)
		}

		err = client.Submit(e.Request.Context(), o)
		switch {
		case err == nil:
		case errors.Is(err, services.ErrWebhookNotConfigured):
			return errorJSON(e, http.StatusServiceUnavailable, "Submission is not configured", nil)
		case errors.Is(err, services.ErrMissingCustomer):
			return errorJSON(e, http.StatusUnprocessableEntity, "Customer name is required", nil)
		case errors.Is(err, services.ErrNoItems):
			return errorJSON(e, http.StatusUnprocessableEntity, "Add at least one item before submitting", nil)
		default:
			logger.Error().Err(err).Str("order", id).Msg("submit: webhook")
			return errorJSON(e, http.StatusBadGateway, "Submission failed. Please try again.", nil)
		}

		logger.Info().Str("order", id).Msg("order submitted")
		SetToast(e, "success", "Order submitted")
		return e.JSON(http.StatusOK, map[string]any{"submitted": true})
	}
}
