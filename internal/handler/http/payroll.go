package http

import (
	"encoding/json"
	"net/http"

	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payrate"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shiftly-hq/timeclock-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	ListSummaries(w http.ResponseWriter, r *http.Request)
	CreateRate(w http.ResponseWriter, r *http.Request)
	ListRates(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	payRateService payrate.PayRateService
}

func NewPayrollHandler(payrollService payroll.PayrollService, payRateService payrate.PayRateService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		payRateService: payRateService,
	}
}

// GetReport implements PayrollHandler.
func (h *payrollHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := payroll.ReportRequest{
		UserID:    q.Get("user_id"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}

	result, err := h.payrollService.GetReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSettings implements PayrollHandler.
func (h *payrollHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.GetSettings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSettings implements PayrollHandler.
func (h *payrollHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.UpdateSettings(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListSummaries implements PayrollHandler.
func (h *payrollHandlerImpl) ListSummaries(w http.ResponseWriter, r *http.Request) {
	var filter payroll.SummaryFilter

	q := r.URL.Query()
	if v := q.Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := q.Get("location_id"); v != "" {
		filter.LocationID = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	result, err := h.payrollService.ListDailySummaries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateRate implements PayrollHandler.
func (h *payrollHandlerImpl) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req payrate.CreateRateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payRateService.CreateRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Pay rate created", result)
}

// ListRates implements PayrollHandler.
func (h *payrollHandlerImpl) ListRates(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		response.BadRequest(w, "user_id query parameter is required", nil)
		return
	}

	result, err := h.payRateService.ListRates(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
