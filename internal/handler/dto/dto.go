// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/orderdesk/orderdesk/internal/model"
)

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItemRequest represents one order line in a creation request.
type OrderItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest represents the request body for creating an order.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// ToItems converts the request lines to domain order items.
func (r CreateOrderRequest) ToItems() []model.OrderItem {
	items := make([]model.OrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = model.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return items
}

// UserWithOrdersResponse represents a user together with their orders.
type UserWithOrdersResponse struct {
	User   model.User    `json:"user"`
	Orders []model.Order `json:"orders"`
}

// ErrorResponse represents a single-message API error.
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

// ValidationErrorResponse represents an API error carrying every field
// violation of a rejected request.
type ValidationErrorResponse struct {
	Errors    []string `json:"errors"`
	Timestamp int64    `json:"timestamp"`
}

// MessageResponse represents an informational API response.
type MessageResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// NewError builds an ErrorResponse stamped with the current epoch millis.
func NewError(message string) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewValidationError builds a ValidationErrorResponse stamped with the
// current epoch millis.
func NewValidationError(violations []string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Errors:    violations,
		Timestamp: time.Now().UnixMilli(),
	}
}

// NewMessage builds a MessageResponse stamped with the current epoch millis.
func NewMessage(message string) MessageResponse {
	return MessageResponse{
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
}
