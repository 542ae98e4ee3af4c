package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nurihr/allowance-backend-go/internal/domain/allowance"
	"github.com/nurihr/allowance-backend-go/internal/handler/http/response"
)

type AllowanceHandler struct {
	service allowance.Service
}

func NewAllowanceHandler(service allowance.Service) AllowanceHandler {
	return AllowanceHandler{service: service}
}

// Calculate runs the monthly calculation without persisting anything.
func (h AllowanceHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req allowance.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.service.CalculateMonthly(r.Context(), req.CitizenID, req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, allowance.NewCalculationResponse(req.CitizenID, req.Year, req.Month, result))
}

// CalculateAndSave runs the calculation and persists the payout.
func (h AllowanceHandler) CalculateAndSave(w http.ResponseWriter, r *http.Request) {
	var req allowance.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.service.CalculateAndSave(r.Context(), req.CitizenID, req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payout recorded", allowance.NewPayoutResponse(record))
}

// GetPayout returns one recorded payout with its itemized breakdown.
func (h AllowanceHandler) GetPayout(w http.ResponseWriter, r *http.Request) {
	citizenID := chi.URLParam(r, "citizenID")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be numeric", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "month must be numeric", nil)
		return
	}

	record, items, err := h.service.GetPayout(r.Context(), citizenID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, allowance.NewPayoutDetailResponse(record, items))
}

// ListPayouts returns recorded payouts for a citizen, optionally filtered
// by ?year=.
func (h AllowanceHandler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	citizenID := chi.URLParam(r, "citizenID")
	if citizenID == "" {
		response.BadRequest(w, "citizenID is required", nil)
		return
	}

	var year *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be numeric", nil)
			return
		}
		year = &parsed
	}

	records, err := h.service.ListPayouts(r.Context(), citizenID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]allowance.PayoutResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, allowance.NewPayoutResponse(rec))
	}

	response.Success(w, result)
}
