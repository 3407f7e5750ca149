package leavehandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/activity"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type Handler struct {
	Service  *leave.Service
	Activity *activity.Store
}

func NewHandler(service *leave.Service, act *activity.Store) *Handler {
	return &Handler{Service: service, Activity: act}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leaves", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{requestID}", h.handleGet)
		r.Put("/{requestID}", h.handleUpdate)
		// The shipped frontend sends PUT for decisions; POST is kept for
		// API callers.
		r.Put("/{requestID}/approve", h.handleApprove)
		r.Post("/{requestID}/approve", h.handleApprove)
		r.Put("/{requestID}/reject", h.handleReject)
		r.Post("/{requestID}/reject", h.handleReject)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.List(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	req, err := h.Service.Get(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload leave.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	req, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	h.Activity.Record("leave_requested", fmt.Sprintf("%s requested %s leave", req.EmployeeName, req.Type))
	api.Created(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch leave.RequestPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	req, err := h.Service.Update(r.Context(), chi.URLParam(r, "requestID"), patch)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

// Approve and reject only move Pending requests; a decided request answers
// with a conflict.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	req, err := h.Service.Approve(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		h.decisionError(w, r, err)
		return
	}
	h.Activity.Record("leave_approved", fmt.Sprintf("%s's %s leave approved", req.EmployeeName, req.Type))
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	req, err := h.Service.Reject(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		h.decisionError(w, r, err)
		return
	}
	h.Activity.Record("leave_rejected", fmt.Sprintf("%s's %s leave rejected", req.EmployeeName, req.Type))
	api.Success(w, req, middleware.GetRequestID(r.Context()))
}

func (h *Handler) decisionError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, leave.ErrInvalidState) {
		api.Fail(w, http.StatusConflict, "already_decided", "leave request is not pending", middleware.GetRequestID(r.Context()))
		return
	}
	api.StoreError(w, err, middleware.GetRequestID(r.Context()))
}
