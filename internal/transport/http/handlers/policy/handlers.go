package policyhandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/activity"
	"hrdesk/internal/domain/policy"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type Handler struct {
	Store    *policy.Store
	Activity *activity.Store
}

func NewHandler(store *policy.Store, act *activity.Store) *Handler {
	return &Handler{Store: store, Activity: act}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/policies", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{policyID}", h.handleGet)
		r.Put("/{policyID}", h.handleUpdate)
		r.Delete("/{policyID}", h.handleDelete)
		// The shipped frontend sends PUT to acknowledge; POST is kept for
		// API callers.
		r.Put("/{policyID}/acknowledge", h.handleAcknowledge)
		r.Post("/{policyID}/acknowledge", h.handleAcknowledge)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Store.List(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, policies, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.Get(r.Context(), chi.URLParam(r, "policyID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, p, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload policy.Policy
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	p, err := h.Store.Create(r.Context(), payload)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	h.Activity.Record("policy_created", fmt.Sprintf("New policy published: %s", p.Title))
	api.Created(w, p, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch policy.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	p, err := h.Store.Update(r.Context(), chi.URLParam(r, "policyID"), patch)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, p, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.Delete(r.Context(), chi.URLParam(r, "policyID"))
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, p, middleware.GetRequestID(r.Context()))
}

// handleAcknowledge records the caller's acknowledgment. Repeats are no-ops.
func (h *Handler) handleAcknowledge(w http.ResponseWriter, r *http.Request) {
	session := middleware.MustSession(r)
	p, err := h.Store.Acknowledge(r.Context(), chi.URLParam(r, "policyID"), session.User.ID)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, p, middleware.GetRequestID(r.Context()))
}
