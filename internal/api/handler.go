package api

import (
	"CurrencyConverter/internal/converter"
	"CurrencyConverter/internal/model"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

type ControllerInterface interface {
	Snapshot() converter.State
	SetAmount(raw string) model.Amount
	Select(side converter.Side, code model.CurrencyCode) error
	Swap()
	ToggleFavorite(ctx context.Context, code model.CurrencyCode) error
	Convert(ctx context.Context) converter.State
}

type Handler struct {
	Ctrl ControllerInterface
}

type AmountRequest struct {
	Amount string `json:"amount"`
}

type SelectRequest struct {
	Side     converter.Side `json:"side"`
	Currency string         `json:"currency"`
}

type FavoriteRequest struct {
	Currency string `json:"currency"`
}

type CurrenciesResponse struct {
	Currencies []model.CurrencyCode `json:"currencies"`
}

type StateResponse struct {
	From        model.CurrencyCode   `json:"from"`
	To          model.CurrencyCode   `json:"to"`
	Amount      string               `json:"amount"`
	Status      model.Status         `json:"status"`
	Converting  bool                 `json:"converting"`
	Result      string               `json:"result,omitempty"`
	Error       string               `json:"error,omitempty"`
	Favorites   []model.CurrencyCode `json:"favorites"`
	FromOptions []converter.Option   `json:"from_options"`
	ToOptions   []converter.Option   `json:"to_options"`
}

func (h *Handler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		httpMethodNotAllowed(w, "GET")
		return
	}
	currencies := h.Ctrl.Snapshot().Currencies
	if currencies == nil {
		currencies = []model.CurrencyCode{}
	}
	successResponse(w, CurrenciesResponse{Currencies: currencies})
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		httpMethodNotAllowed(w, "GET")
		return
	}
	successResponse(w, mapToStateResponse(h.Ctrl.Snapshot()))
}

func (h *Handler) PostAmount(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		httpMethodNotAllowed(w, "POST")
		return
	}
	var req AmountRequest
	if !decodeBody(r, &req) {
		invalidRequestBody(w)
		return
	}
	h.Ctrl.SetAmount(req.Amount)
	successResponse(w, mapToStateResponse(h.Ctrl.Snapshot()))
}

func (h *Handler) PostSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		httpMethodNotAllowed(w, "POST")
		return
	}
	var req SelectRequest
	if !decodeBody(r, &req) {
		invalidRequestBody(w)
		return
	}
	if err := h.Ctrl.Select(req.Side, model.NormalizeCode(req.Currency)); err != nil {
		selectionError(w, err)
		return
	}
	successResponse(w, mapToStateResponse(h.Ctrl.Snapshot()))
}

func (h *Handler) PostSwap(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		httpMethodNotAllowed(w, "POST")
		return
	}
	h.Ctrl.Swap()
	successResponse(w, mapToStateResponse(h.Ctrl.Snapshot()))
}

// PostConvert blocks until the conversion settles. Conversion errors are part
// of the returned state, not of the HTTP status.
func (h *Handler) PostConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		httpMethodNotAllowed(w, "POST")
		return
	}
	state := h.Ctrl.Convert(r.Context())
	successResponse(w, mapToStateResponse(state))
}

func (h *Handler) PostToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		httpMethodNotAllowed(w, "POST")
		return
	}
	var req FavoriteRequest
	if !decodeBody(r, &req) {
		invalidRequestBody(w)
		return
	}
	if err := h.Ctrl.ToggleFavorite(r.Context(), model.NormalizeCode(req.Currency)); err != nil {
		if errors.Is(err, converter.ErrEmptyCurrency) {
			errorResponse(w, http.StatusBadRequest, EmptyCurrency)
			return
		}
		log.Printf("[Handler] toggle favorite failed: %v", err)
		serverInternalError(w)
		return
	}
	successResponse(w, mapToStateResponse(h.Ctrl.Snapshot()))
}

func decodeBody(r *http.Request, out any) bool {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return false
	}
	return json.Unmarshal(body, out) == nil
}

func selectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, converter.ErrSameCurrency):
		errorResponse(w, http.StatusConflict, SameCurrency)
	case errors.Is(err, converter.ErrEmptyCurrency):
		errorResponse(w, http.StatusBadRequest, EmptyCurrency)
	case errors.Is(err, converter.ErrUnknownSide):
		errorResponse(w, http.StatusBadRequest, UnknownSide)
	case errors.Is(err, converter.ErrUnknownCurrency):
		errorResponse(w, http.StatusBadRequest, UnknownCurrency)
	default:
		serverInternalError(w)
	}
}

func httpMethodNotAllowed(w http.ResponseWriter, targetMethod string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Allow", targetMethod)
	w.WriteHeader(http.StatusMethodNotAllowed)
	_ = json.NewEncoder(w).Encode(targetMethod + " only")
}

func invalidRequestBody(w http.ResponseWriter) {
	errorResponse(w, http.StatusBadRequest, InvalidRequestBody)
}

func serverInternalError(w http.ResponseWriter) {
	errorResponse(w, http.StatusInternalServerError, ServerInternalError)
}

func successResponse(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[Handler] Error encoding response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, code int, svcErrorMsg ServiceError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: svcErrorMsg})
}

func mapToStateResponse(s converter.State) StateResponse {
	resp := StateResponse{
		From:        s.From,
		To:          s.To,
		Amount:      s.Amount.String(),
		Status:      s.Status(),
		Converting:  s.Converting,
		Favorites:   s.Favorites.Codes(),
		FromOptions: s.Options(converter.From),
		ToOptions:   s.Options(converter.To),
	}
	if s.Result != nil {
		resp.Result = s.Result.String()
	}
	if s.Err != nil {
		resp.Error = s.Err.Message()
	}
	return resp
}
