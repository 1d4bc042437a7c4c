package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/orderdesk/orderdesk/internal/handler/dto"
	"github.com/orderdesk/orderdesk/internal/service"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc *service.Service, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/v1/users/{id}/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.NewError("invalid user id"))
		return
	}

	orders, err := h.svc.ListOrders(userID)
	if err != nil {
		h.handleServiceError(w, userID, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// Create handles POST /api/v1/users/{id}/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.NewError("invalid user id"))
		return
	}

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	order, err := h.svc.CreateOrder(userID, req.ToItems())
	if err != nil {
		h.handleServiceError(w, userID, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// handleServiceError maps service errors to HTTP responses.
func (h *OrderHandler) handleServiceError(w http.ResponseWriter, userID int64, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, dto.NewError(fmt.Sprintf("user %d not found", userID)))
	case errors.Is(err, service.ErrEmptyOrder), errors.Is(err, service.ErrInvalidOrderItem):
		writeJSON(w, http.StatusBadRequest, dto.NewError(err.Error()))
	default:
		h.logger.Error("internal_error", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.NewError("an internal error occurred"))
	}
}
