package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paycheck-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/paycheck-labs/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreateRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	CalculateRun(w http.ResponseWriter, r *http.Request)
	ProcessRun(w http.ResponseWriter, r *http.Request)
	UpdateRunStatus(w http.ResponseWriter, r *http.Request)
	DeleteRun(w http.ResponseWriter, r *http.Request)
	ListRunPayStubs(w http.ResponseWriter, r *http.Request)
	GetPayStub(w http.ResponseWriter, r *http.Request)
	UpdatePayStub(w http.ResponseWriter, r *http.Request)
	DeletePayStub(w http.ResponseWriter, r *http.Request)
	PayStubPDF(w http.ResponseWriter, r *http.Request)
	MyPayStubs(w http.ResponseWriter, r *http.Request)
	EmployeePayStubs(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// CreateRun implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateRunRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRun decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.CreateRun(r.Context(), req)
	if err != nil {
		slog.Error("CreateRun service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run created", resp)
}

// GetRun implements PayrollHandler.
func (h *PayrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.payrollService.GetRun(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	var filter payroll.ListRunsFilter

	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}
	if v, err := strconv.Atoi(q.Get("year")); err == nil {
		filter.Year = &v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = v
	}

	resp, err := h.payrollService.ListRuns(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CalculateRun implements PayrollHandler.
func (h *PayrollHandlerImpl) CalculateRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.payrollService.CalculateRun(r.Context(), id)
	if err != nil {
		slog.Error("CalculateRun service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run calculated", resp)
}

// ProcessRun implements PayrollHandler.
func (h *PayrollHandlerImpl) ProcessRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.payrollService.ProcessRun(r.Context(), id)
	if err != nil {
		slog.Error("ProcessRun service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run processed", resp)
}

// UpdateRunStatus implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdateRunStatus(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateRunStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRunStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.payrollService.UpdateRunStatus(r.Context(), req)
	if err != nil {
		slog.Error("UpdateRunStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run status updated", resp)
}

// DeleteRun implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeleteRun(r.Context(), id); err != nil {
		slog.Error("DeleteRun service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll run deleted", nil)
}

// ListRunPayStubs implements PayrollHandler.
func (h *PayrollHandlerImpl) ListRunPayStubs(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	resp, err := h.payrollService.ListRunPayStubs(r.Context(), runID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetPayStub implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayStub(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	resp, err := h.payrollService.GetPayStub(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// UpdatePayStub implements PayrollHandler.
func (h *PayrollHandlerImpl) UpdatePayStub(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayStubRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdatePayStub decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.payrollService.UpdatePayStub(r.Context(), req)
	if err != nil {
		slog.Error("UpdatePayStub service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay stub updated", resp)
}

// DeletePayStub implements PayrollHandler.
func (h *PayrollHandlerImpl) DeletePayStub(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeletePayStub(r.Context(), id); err != nil {
		slog.Error("DeletePayStub service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay stub deleted", nil)
}

// PayStubPDF implements PayrollHandler.
func (h *PayrollHandlerImpl) PayStubPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, filename, err := h.payrollService.PayStubPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}

// MyPayStubs implements PayrollHandler. Employees see their own stubs only.
func (h *PayrollHandlerImpl) MyPayStubs(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		response.BadRequest(w, "No employee record linked to this account", nil)
		return
	}

	h.listEmployeeStubs(w, r, employeeID)
}

// EmployeePayStubs implements PayrollHandler.
func (h *PayrollHandlerImpl) EmployeePayStubs(w http.ResponseWriter, r *http.Request) {
	h.listEmployeeStubs(w, r, chi.URLParam(r, "id"))
}

func (h *PayrollHandlerImpl) listEmployeeStubs(w http.ResponseWriter, r *http.Request, employeeID string) {
	var year *int
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		year = &v
	}

	resp, err := h.payrollService.ListEmployeePayStubs(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
