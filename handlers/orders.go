package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"marnthara/collections"
	"marnthara/order"
	"marnthara/services"
	"marnthara/store"
)

// stateResponse is the current order with its totals and undo status.
type stateResponse struct {
	ID        string               `json:"id"`
	State     *order.Order         `json:"state"`
	Totals    services.OrderTotals `json:"totals"`
	CanUndo   bool                 `json:"can_undo"`
	UndoDepth int                  `json:"undo_depth"`
}

func newStateResponse(id string, s *store.Store, vatRate float64) stateResponse {
	st := s.GetState()
	return stateResponse{
		ID:        id,
		State:     st,
		Totals:    services.CalcOrderTotals(st, vatRate),
		CanUndo:   s.CanUndo(),
		UndoDepth: s.UndoDepth(),
	}
}

// orderError writes the response for an error raised while loading or
// updating an order.
func orderError(e *core.RequestEvent, err error) error {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return errorJSON(e, http.StatusNotFound, "Order not found", nil)
	case errors.Is(err, order.ErrMalformedState):
		return errorJSON(e, http.StatusUnprocessableEntity, "Stored order is malformed", err.Error())
	case errors.Is(err, store.ErrNothingToUndo):
		return errorJSON(e, http.StatusConflict, "Nothing to undo", nil)
	}
	logger.Error().Err(err).Str("path", e.Request.URL.Path).Msg("order request failed")
	return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.", nil)
}

// HandleOrderCreate stores a new order with the default state.
// Route: POST /api/orders
func HandleOrderCreate(app core.App) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := collections.CreateOrder(app, time.Now())
		if err != nil {
			logger.Error().Err(err).Msg("create order")
			return errorJSON(e, http.StatusInternalServerError, "Could not create order", nil)
		}
		return e.JSON(http.StatusCreated, map[string]any{
			"id":           record.Id,
			"quote_number": record.GetString("quote_number"),
			"state":        order.Default(),
		})
	}
}

// HandleOrderState returns the current state and totals.
// Route: GET /api/orders/{id}/state
func HandleOrderState(orders *OrderStores, vatRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		var resp stateResponse
		err := orders.With(e.Request.Context(), id, func(s *store.Store) error {
			resp = newStateResponse(id, s, vatRate)
			return nil
		})
		if err != nil {
			return orderError(e, err)
		}
		return e.JSON(http.StatusOK, resp)
	}
}

type dispatchRequest struct {
	Action   string        `json:"action" validate:"required"`
	Payload  store.Payload `json:"payload"`
	SkipUndo bool          `json:"skipUndo"`
	SkipSave bool          `json:"skipSave"`
}

// HandleDispatch applies one action to the order. Unknown actions leave the
// state unchanged. A failed save is reported in the save_error field while
// the new state is kept.
// Route: POST /api/orders/{id}/dispatch
func HandleDispatch(orders *OrderStores, vatRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req dispatchRequest
		if ok, err := bindJSON(e, &req); !ok {
			return err
		}
		if store.ActionType(req.Action) == store.ActionLoadState && req.Payload.State != nil {
			loaded, err := decodeLoadState(req.Payload.State)
			if err != nil {
				return errorJSON(e, http.StatusBadRequest, "Invalid order state", err.Error())
			}
			req.Payload.State = loaded
		}

		id := e.Request.PathValue("id")
		var (
			resp    stateResponse
			saveErr error
		)
		err := orders.With(e.Request.Context(), id, func(s *store.Store) error {
			saveErr = s.Dispatch(e.Request.Context(), store.ActionType(req.Action), req.Payload,
				store.DispatchOptions{SkipUndo: req.SkipUndo, SkipSave: req.SkipSave})
			resp = newStateResponse(id, s, vatRate)
			return nil
		})
		if err != nil {
			return orderError(e, err)
		}
		if saveErr != nil {
			SetToast(e, "warning", "Changes could not be saved")
			return e.JSON(http.StatusOK, struct {
				stateResponse
				SaveError string `json:"save_error"`
			}{resp, saveErr.Error()})
		}
		return e.JSON(http.StatusOK, resp)
	}
}

// decodeLoadState runs a dispatched state through the same checks as an
// imported file.
func decodeLoadState(o *order.Order) (*order.Order, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", order.ErrMalformedState, err)
	}
	return order.Decode(data)
}

// HandleUndo restores the previous snapshot.
// Route: POST /api/orders/{id}/undo
func HandleUndo(orders *OrderStores, vatRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		var resp stateResponse
		err := orders.With(e.Request.Context(), id, func(s *store.Store) error {
			if err := s.Undo(e.Request.Context()); err != nil {
				return err
			}
			resp = newStateResponse(id, s, vatRate)
			return nil
		})
		if err != nil {
			return orderError(e, err)
		}
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleReset replaces the order with the default empty one. The reset can
// be undone.
// Route: POST /api/orders/{id}/reset
func HandleReset(orders *OrderStores, vatRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		var resp stateResponse
		err := orders.With(e.Request.Context(), id, func(s *store.Store) error {
			if err := s.Reset(e.Request.Context()); err != nil {
				return err
			}
			resp = newStateResponse(id, s, vatRate)
			return nil
		})
		if err != nil {
			return orderError(e, err)
		}
		SetToast(e, "success", "Order cleared")
		return e.JSON(http.StatusOK, resp)
	}
}

// maxImportSize bounds an uploaded state file.
const maxImportSize = 5 << 20

// HandleImport replaces the order with an uploaded state file. The body is
// the JSON document produced by HandleStateDownload.
// Route: POST /api/orders/{id}/import
func HandleImport(orders *OrderStores, vatRate float64) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := io.ReadAll(io.LimitReader(e.Request.Body, maxImportSize))
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, "Could not read upload", err.Error())
		}
		imported, err := order.Decode(data)
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid order file", err.Error())
		}

		id := e.Request.PathValue("id")
		var resp stateResponse
		err = orders.With(e.Request.Context(), id, func(s *store.Store) error {
			if err := s.Dispatch(e.Request.Context(), store.ActionLoadState, store.Payload{State: imported}, store.DispatchOptions{}); err != nil {
				return err
			}
			resp = newStateResponse(id, s, vatRate)
			return nil
		})
		if err != nil {
			return orderError(e, err)
		}
		SetToast(e, "success", "Order imported")
		return e.JSON(http.StatusOK, resp)
	}
}

// HandleStateDownload returns the state as a JSON file stamped with the
// current app version.
// Route: GET /api/orders/{id}/state.json
func HandleStateDownload(orders *OrderStores) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		var snapshot order.Order
		err := orders.With(e.Request.Context(), id, func(s *store.Store) error {
			snapshot = *s.GetState()
			return nil
		})
		if err != nil {
			return orderError(e, err)
		}
		snapshot.AppVersion = order.AppVersion

		filename := fmt.Sprintf("marnthara-%s-%s.json", sanitizeFilename(id), time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		return e.JSON(http.StatusOK, &snapshot)
	}
}
