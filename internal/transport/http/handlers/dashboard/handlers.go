package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/dashboard"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type Handler struct {
	Service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/stats", h.handleStats)
		r.Get("/analytics", h.handleAnalytics)
		r.Get("/activity", h.handleActivity)
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.Service.Analytics(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, analytics, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.RecentActivity(r.Context())
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}
