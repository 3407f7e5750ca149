package commshandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/activity"
	"hrdesk/internal/domain/comms"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

// Handler serves outbound communication. Restricted to admin and HR roles.
type Handler struct {
	Service  *comms.Service
	Activity *activity.Store
}

func NewHandler(service *comms.Service, act *activity.Store) *Handler {
	return &Handler{Service: service, Activity: act}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/communication", func(r chi.Router) {
		r.Use(middleware.RequireRole(core.RoleAdmin, core.RoleHR))
		r.Post("/email", h.handleSendEmail)
		r.Post("/whatsapp", h.handleSendWhatsApp)
		r.Get("/logs", h.handleLogs)
	})
}

func (h *Handler) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	var payload comms.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if len(payload.Recipients) == 0 {
		api.Fail(w, http.StatusBadRequest, "no_recipients", "at least one recipient is required", middleware.GetRequestID(r.Context()))
		return
	}
	entry, err := h.Service.SendEmail(r.Context(), payload)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	h.Activity.Record("email_sent", fmt.Sprintf("Email sent to %d recipients", len(payload.Recipients)))
	api.Created(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSendWhatsApp(w http.ResponseWriter, r *http.Request) {
	var payload comms.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if len(payload.Recipients) == 0 {
		api.Fail(w, http.StatusBadRequest, "no_recipients", "at least one recipient is required", middleware.GetRequestID(r.Context()))
		return
	}
	entry, err := h.Service.SendWhatsApp(r.Context(), payload)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	h.Activity.Record("whatsapp_sent", fmt.Sprintf("WhatsApp message sent to %d recipients", len(payload.Recipients)))
	api.Created(w, entry, middleware.GetRequestID(r.Context()))
}

// handleLogs lists the communication log, optionally filtered with ?type=.
func (h *Handler) handleLogs(w http.ResponseWriter, r *http.Request) {
	channel := comms.Channel(r.URL.Query().Get("type"))
	logs, err := h.Service.Logs(r.Context(), channel)
	if err != nil {
		api.StoreError(w, err, middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, logs, middleware.GetRequestID(r.Context()))
}
