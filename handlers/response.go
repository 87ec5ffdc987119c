package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger sets the logger used by every handler.
func SetLogger(l zerolog.Logger) { logger = l }

var validate = validator.New()

// apiError is the body of every failed request.
type apiError struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// SetToast sets the HX-Trigger response header so an HTMX client shows a
// toast. An existing HX-Trigger JSON object is merged.
func SetToast(e *core.RequestEvent, toastType, message string) {
	toast := map[string]string{"message": message, "type": toastType}

	merged := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &merged); err != nil {
			logger.Warn().Err(err).Msg("toast: existing HX-Trigger is not JSON, overwriting")
			merged = map[string]any{}
		}
	}
	merged["showToast"] = toast

	data, err := json.Marshal(merged)
	if err != nil {
		logger.Error().Err(err).Msg("toast: marshal HX-Trigger")
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// errorJSON writes an error body with an error toast.
func errorJSON(e *core.RequestEvent, status int, message string, details any) error {
	SetToast(e, "error", message)
	return e.JSON(status, apiError{Error: message, Details: details})
}

// bindJSON decodes the request body into dst and validates its struct tags.
// On failure the 400 response has already been written and ok is false.
func bindJSON(e *core.RequestEvent, dst any) (ok bool, err error) {
	if err := e.BindBody(dst); err != nil {
		return false, errorJSON(e, http.StatusBadRequest, "invalid request body", err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return false, errorJSON(e, http.StatusBadRequest, "invalid request", validationDetails(err))
	}
	return true, nil
}

// validationDetails maps each failing field to the tag it failed.
func validationDetails(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// attachment writes data as a file download.
func attachment(e *core.RequestEvent, contentType, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(data)
	return err
}
