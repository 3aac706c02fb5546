package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/averycrespi/calc-mcp/internal/calculator"
	"github.com/averycrespi/calc-mcp/internal/results"

	"github.com/julienschmidt/httprouter"
)

type buttonsResponse struct {
	Columns int                   `json:"columns"`
	Buttons []results.ButtonEntry `json:"buttons"`
}

type sequenceRequest struct {
	Buttons []string `json:"buttons"`
}

func (api *API) stateHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, http.StatusOK, api.calc.State())
}

func (api *API) buttonsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, http.StatusOK, buttonsResponse{
		Columns: calculator.KeypadColumns,
		Buttons: results.NewButtonEntries(calculator.Keypad(), calculator.KeypadColumns),
	})
}

func (api *API) pressButtonHandler(w http.ResponseWriter, r *http.Request) {
	label := httprouter.ParamsFromContext(r.Context()).ByName("label")

	state, err := api.calc.Press(label)
	if err != nil {
		if errors.Is(err, calculator.ErrUnknownButton) {
			api.errorResponse(w, r, http.StatusNotFound, err.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, http.StatusOK, state)
}

func (api *API) pressSequenceHandler(w http.ResponseWriter, r *http.Request) {
	var req sequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.errorResponse(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Buttons) == 0 {
		api.errorResponse(w, r, http.StatusBadRequest, "buttons must not be empty")
		return
	}

	state, err := api.calc.PressSequence(req.Buttons)
	if err != nil {
		if errors.Is(err, calculator.ErrUnknownButton) {
			api.errorResponse(w, r, http.StatusNotFound, err.Error())
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendResponse(w, r, http.StatusOK, state)
}

func (api *API) clearHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, http.StatusOK, api.calc.Clear())
}
