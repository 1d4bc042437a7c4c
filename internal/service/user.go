package service

import (
	"strings"

	"github.com/orderdesk/orderdesk/internal/model"
	"github.com/orderdesk/orderdesk/internal/query"
)

// CreateUser validates the input, enforces email uniqueness and stores a new
// active user. Email uniqueness is case-insensitive and claimed atomically,
// so two concurrent creations with the same email yield exactly one success.
func (s *Service) CreateUser(input CreateUserInput) (model.User, error) {
	if violations := s.validateCreateUser(input); len(violations) > 0 {
		s.metrics.IncValidationFailed()
		return model.User{}, &ValidationError{Violations: violations}
	}

	if !s.emails.Claim(input.Email) {
		s.metrics.IncConflict()
		return model.User{}, ErrEmailTaken
	}

	user := s.users.Insert(func(id int64) model.User {
		return model.User{
			ID:        id,
			Name:      input.Name,
			Email:     input.Email,
			Status:    model.UserStatusActive,
			CreatedAt: s.now().UTC(),
		}
	})

	s.metrics.IncUserCreated()
	s.logger.Info("user_created", "user_id", user.ID)

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(id int64) (model.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return model.User{}, notFound(id)
	}
	return user, nil
}

// GetUserWithOrders retrieves a user together with all their orders.
func (s *Service) GetUserWithOrders(id int64) (model.User, []model.Order, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return model.User{}, nil, notFound(id)
	}
	return user, s.ordersOf(id), nil
}

// DeleteUser removes a user, releases their email for reuse and drops their
// orders.
func (s *Service) DeleteUser(id int64) error {
	user, ok := s.users.Get(id)
	if !ok {
		return notFound(id)
	}

	if !s.users.Delete(id) {
		return notFound(id)
	}
	s.emails.Release(user.Email)

	for _, orderID := range s.byUser.ListByParent(id) {
		s.orders.Delete(orderID)
	}
	s.byUser.Remove(id)

	s.metrics.IncUserDeleted()
	s.logger.Info("user_deleted", "user_id", id)

	return nil
}

// ListUsersInput defines filters and pagination for listing users.
// Zero-valued filters are no-ops.
type ListUsersInput struct {
	Page   int
	Size   int
	Status string
	Search string
}

// ListUsers returns a page of users matching the filters, in insertion order.
func (s *Service) ListUsers(input ListUsersInput) query.Page[model.User] {
	var filters []query.Filter[model.User]

	if input.Status != "" {
		filters = append(filters, statusIs(input.Status))
	}
	if term := strings.TrimSpace(input.Search); term != "" {
		filters = append(filters, matchesSearch(term))
	}

	matched := query.Apply(s.users.List(), query.And(filters...))
	return query.Paginate(matched, input.Page, input.Size)
}

// statusIs matches users whose status equals the given value, ignoring case.
func statusIs(status string) query.Filter[model.User] {
	return func(u model.User) bool {
		return strings.EqualFold(string(u.Status), status)
	}
}

// matchesSearch matches users whose name or email contains the term,
// ignoring case.
func matchesSearch(term string) query.Filter[model.User] {
	term = strings.ToLower(term)
	return func(u model.User) bool {
		return strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term)
	}
}
