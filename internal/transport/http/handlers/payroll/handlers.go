package payrollhandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/activity"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

// Handler serves payroll. Every route is restricted to admin and HR roles.
type Handler struct {
	Service  *payroll.Service
	Activity *activity.Store
}

func NewHandler(service *payroll.Service, act *activity.Store) *Handler {
	return &Handler{Service: service, Activity: act}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireRole(core.RoleAdmin, core.RoleHR))
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/process", h.handleProcess)
		r.Get("/export", h.handleExport)
		r.Get("/employee/{employeeID}", h.handleListByEmployee)
		r.Get("/{payslipID}", h.handleGet)
		r.Put("/{payslipID}", h.handleUpdate)
		r.Get("/{payslipID}/payslip", h.handlePayslipPDF)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	slips, err := h.Service.List(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, slips, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	slips, err := h.Service.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, slips, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	slip, err := h.Service.Get(r.Context(), chi.URLParam(r, "payslipID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload payroll.Payslip
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	slip, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch payroll.PayslipPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	slip, err := h.Service.Update(r.Context(), chi.URLParam(r, "payslipID"), patch)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProcess(w http.ResponseWriter, r *http.Request) {
	var payload payroll.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	result, err := h.Service.Process(r.Context(), payload)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	h.Activity.Record("payroll_processed", fmt.Sprintf("Payroll run covered %d employees", result.Processed))
	api.Success(w, result, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.ExportCSV(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payroll.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) handlePayslipPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.PayslipPDF(r.Context(), chi.URLParam(r, "payslipID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="payslip.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
