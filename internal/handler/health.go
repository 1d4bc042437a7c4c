package handler

import (
	"net/http"

	"github.com/orderdesk/orderdesk/internal/service"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc *service.Service
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(svc *service.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// HealthResponse is the body of health endpoints.
type HealthResponse struct {
	Status string         `json:"status"`
	Checks map[string]int `json:"checks,omitempty"`
}

// Healthz handles GET /healthz. Liveness only.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz and reports basic store gauges.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Checks: map[string]int{
			"users_count":  h.svc.UserCount(),
			"orders_count": h.svc.OrderCount(),
		},
	})
}
