package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/timeclock"
	"github.com/paycheck-labs/payroll-backend-go/internal/handler/http/response"
)

type TimeClockHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	MyPunches(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
	CorrectPunch(w http.ResponseWriter, r *http.Request)
	HoursSummary(w http.ResponseWriter, r *http.Request)
}

type TimeClockHandlerImpl struct {
	timeClockService timeclock.TimeClockService
}

func NewTimeClockHandler(timeClockService timeclock.TimeClockService) TimeClockHandler {
	return &TimeClockHandlerImpl{timeClockService: timeClockService}
}

func punchFilterFromQuery(r *http.Request) timeclock.PunchFilter {
	var filter timeclock.PunchFilter

	q := r.URL.Query()
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := q.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}

	return filter
}

// Punch implements TimeClockHandler.
func (h *TimeClockHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req timeclock.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.timeClockService.Punch(r.Context(), req)
	if err != nil {
		slog.Error("Punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", resp)
}

// Status implements TimeClockHandler.
func (h *TimeClockHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timeClockService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MyPunches implements TimeClockHandler.
func (h *TimeClockHandlerImpl) MyPunches(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timeClockService.MyPunches(r.Context(), punchFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListPunches implements TimeClockHandler.
func (h *TimeClockHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	resp, err := h.timeClockService.ListPunches(r.Context(), punchFilterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CorrectPunch implements TimeClockHandler.
func (h *TimeClockHandlerImpl) CorrectPunch(w http.ResponseWriter, r *http.Request) {
	var req timeclock.CorrectPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CorrectPunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.timeClockService.CorrectPunch(r.Context(), req)
	if err != nil {
		slog.Error("CorrectPunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch corrected", resp)
}

// HoursSummary implements TimeClockHandler.
func (h *TimeClockHandlerImpl) HoursSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	resp, err := h.timeClockService.HoursSummary(r.Context(), employeeID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
