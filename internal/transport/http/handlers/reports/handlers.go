package reportshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

// Handler serves reporting. Managers can read reports alongside admin and HR.
type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireRole(core.RoleAdmin, core.RoleHR, core.RoleManager))
		r.Get("/payroll", h.handlePayroll)
		r.Get("/attendance", h.handleAttendance)
		r.Get("/departments", h.handleDepartments)
		r.Get("/export", h.handleExport)
	})
}

func (h *Handler) handlePayroll(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.PayrollReport(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttendance(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.AttendanceReport(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.DepartmentReport(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, report, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("report")
	data, err := h.Service.ExportCSV(r.Context(), name)
	if err != nil {
		if errors.Is(err, reports.ErrUnknownReport) {
			api.Fail(w, http.StatusBadRequest, "unknown_report", "unknown report: "+name, middleware.GetRequestID(r.Context()))
			return
		}
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
