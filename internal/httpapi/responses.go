package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/averycrespi/calc-mcp/internal/logging"
)

type errorBody struct {
	Code int    `json:"code"`
	Text string `json:"text"`
}

func (api *API) sendResponse(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to encode response", err,
			slog.String("path", r.URL.Path))
	}
}

func (api *API) errorResponse(w http.ResponseWriter, r *http.Request, status int, text string) {
	api.sendResponse(w, r, status, errorBody{Code: status, Text: text})
}

func (api *API) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal server error")
}

func (api *API) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusNotFound, "not found")
}

func (api *API) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.errorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
