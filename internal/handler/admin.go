package handler

import (
	"log/slog"
	"net/http"

	"github.com/orderdesk/orderdesk/internal/handler/dto"
	"github.com/orderdesk/orderdesk/internal/service"
)

// AdminHandler serves maintenance endpoints. Intended for development and
// demo environments only.
type AdminHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc *service.Service, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: logger,
	}
}

// Reset handles DELETE /api/v1/admin/reset. Clears all stores, resets the
// identifier counters and reloads the example data set.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.svc.Reset()
	writeJSON(w, http.StatusOK, dto.NewMessage("data reset"))
}
