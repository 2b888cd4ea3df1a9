package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftly-hq/timeclock-backend-go/internal/domain/timeentry"
	"github.com/shiftly-hq/timeclock-backend-go/internal/handler/http/response"
)

type TimeClockHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type timeClockHandlerImpl struct {
	timeClockService timeentry.TimeClockService
}

func NewTimeClockHandler(timeClockService timeentry.TimeClockService) TimeClockHandler {
	return &timeClockHandlerImpl{
		timeClockService: timeClockService,
	}
}

// ClockIn implements TimeClockHandler.
func (h *timeClockHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timeentry.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timeClockService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements TimeClockHandler.
func (h *timeClockHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeClockService.ClockOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements TimeClockHandler.
func (h *timeClockHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	result, err := h.timeClockService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements TimeClockHandler.
func (h *timeClockHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := entryFilterFromQuery(r)

	result, err := h.timeClockService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}

	response.SuccessWithMeta(w, result.Entries, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// Update implements TimeClockHandler.
func (h *timeClockHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	var req timeentry.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.timeClockService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func entryFilterFromQuery(r *http.Request) timeentry.EntryFilter {
	var filter timeentry.EntryFilter

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
	if v := q.Get("calc_status"); v != "" {
		filter.CalcStatus = &v
	}
	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	return filter
}
