package handler

import (
	"net/http"

	"github.com/orderdesk/orderdesk/internal/service"
)

// StatsHandler serves aggregate statistics.
type StatsHandler struct {
	svc *service.Service
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.Service) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Stats handles GET /api/v1/stats.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}
