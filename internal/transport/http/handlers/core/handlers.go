package corehandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/activity"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

// Handler serves the employee directory, departments and positions.
type Handler struct {
	Store    *core.Store
	Activity *activity.Store
}

func NewHandler(store *core.Store, act *activity.Store) *Handler {
	return &Handler{Store: store, Activity: act}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleListEmployees)
		r.Post("/", h.handleCreateEmployee)
		r.Get("/search", h.handleSearchEmployees)
		r.Get("/{employeeID}", h.handleGetEmployee)
		r.Put("/{employeeID}", h.handleUpdateEmployee)
		r.Delete("/{employeeID}", h.handleDeleteEmployee)
	})
	r.Route("/departments", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleListDepartments)
		r.Post("/", h.handleCreateDepartment)
		r.Get("/{departmentID}", h.handleGetDepartment)
		r.Put("/{departmentID}", h.handleUpdateDepartment)
		r.Delete("/{departmentID}", h.handleDeleteDepartment)
	})
	r.With(middleware.RequireAuth).Get("/positions", h.handleListPositions)
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.GetEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var payload core.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	emp, err := h.Store.CreateEmployee(r.Context(), payload)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	h.Activity.Record("employee_added", fmt.Sprintf("%s joined %s", emp.Name, emp.Department))
	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var patch core.EmployeePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	emp, err := h.Store.UpdateEmployee(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.Store.DeleteEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSearchEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.SearchEmployees(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Store.ListDepartments(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, departments, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := h.Store.GetDepartment(r.Context(), chi.URLParam(r, "departmentID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var payload core.Department
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	dept, err := h.Store.CreateDepartment(r.Context(), payload)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var patch core.DepartmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	dept, err := h.Store.UpdateDepartment(r.Context(), chi.URLParam(r, "departmentID"), patch)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := h.Store.DeleteDepartment(r.Context(), chi.URLParam(r, "departmentID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dept, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Store.ListPositions(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, positions, middleware.GetRequestID(r.Context()))
}
