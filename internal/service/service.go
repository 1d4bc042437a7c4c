// Package service provides business logic for the application.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/orderdesk/orderdesk/internal/metrics"
	"github.com/orderdesk/orderdesk/internal/model"
	"github.com/orderdesk/orderdesk/internal/store"
)

// Service errors.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("email already in use")
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrInvalidOrderItem = errors.New("order items must have a positive quantity and a non-negative price")
)

// ValidationError reports all field-level violations of a request at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// Service owns the process-local user and order state and all operations on
// it. Construct one per process (or per test) and share it by reference;
// there is no global state.
type Service struct {
	users    *store.Store[model.User]
	orders   *store.Store[model.Order]
	byUser   *store.RelationIndex[int64]
	emails   *store.UniqueIndex
	validate *validator.Validate
	metrics  metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Service with empty stores.
func New(logger *slog.Logger, recorder metrics.Recorder) *Service {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Service{
		users:    store.New[model.User](),
		orders:   store.New[model.Order](),
		byUser:   store.NewRelationIndex[int64](),
		emails:   store.NewUniqueIndex(),
		validate: newValidator(),
		metrics:  recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// UserCount returns the number of stored users.
func (s *Service) UserCount() int {
	return s.users.Len()
}

// OrderCount returns the number of stored orders.
func (s *Service) OrderCount() int {
	return s.orders.Len()
}

func notFound(id int64) error {
	return fmt.Errorf("user %d: %w", id, ErrUserNotFound)
}
