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

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.Service, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/v1/users.
// Supports page/size pagination plus status and free-text search filters.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := h.svc.ListUsers(service.ListUsersInput{
		Page:   queryInt(r, "page", 0),
		Size:   queryInt(r, "size", 10),
		Status: query.Get("status"),
		Search: query.Get("search"),
	})

	writeJSON(w, http.StatusOK, page)
}

// Create handles POST /api/v1/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.NewError("invalid request body"))
		return
	}

	user, err := h.svc.CreateUser(service.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, dto.NewValidationError(verr.Violations))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, dto.NewError("email already in use"))
		default:
			h.internalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Get handles GET /api/v1/users/{id}, returning the user with their orders.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.NewError("invalid user id"))
		return
	}

	user, orders, err := h.svc.GetUserWithOrders(id)
	if err != nil {
		h.handleServiceError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.UserWithOrdersResponse{
		User:   user,
		Orders: orders,
	})
}

// Delete handles DELETE /api/v1/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.NewError("invalid user id"))
		return
	}

	if err := h.svc.DeleteUser(id); err != nil {
		h.handleServiceError(w, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Top handles GET /api/v1/users/top.
func (h *UserHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", service.DefaultTopUsers)
	writeJSON(w, http.StatusOK, h.svc.TopUsers(limit))
}

// handleServiceError maps service errors for a specific user to HTTP
// responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, id int64, err error) {
	if errors.Is(err, service.ErrUserNotFound) {
		writeJSON(w, http.StatusNotFound, dto.NewError(fmt.Sprintf("user %d not found", id)))
		return
	}
	h.internalError(w, err)
}

func (h *UserHandler) internalError(w http.ResponseWriter, err error) {
	h.logger.Error("internal_error", "error", err)
	writeJSON(w, http.StatusInternalServerError, dto.NewError("an internal error occurred"))
}
