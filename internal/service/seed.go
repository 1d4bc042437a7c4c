package service

import (
	"time"

	"github.com/orderdesk/orderdesk/internal/model"
)

// Seed loads the example data set into empty stores: three users and two
// orders. Identifier counters end up at 3 (users) and 2 (orders), so the next
// creations get IDs 4 and 3.
func (s *Service) Seed() {
	now := s.now().UTC()

	seedUsers := []struct {
		name, email string
		status      model.UserStatus
		age         time.Duration
	}{
		{"Alice Dupont", "alice@example.com", model.UserStatusActive, 30 * 24 * time.Hour},
		{"Bob Martin", "bob@example.com", model.UserStatusActive, 15 * 24 * time.Hour},
		{"Claire Durand", "claire@example.com", model.UserStatusInactive, 5 * 24 * time.Hour},
	}

	for _, su := range seedUsers {
		s.emails.Claim(su.email)
		s.users.Insert(func(id int64) model.User {
			return model.User{
				ID:        id,
				Name:      su.name,
				Email:     su.email,
				Status:    su.status,
				CreatedAt: now.Add(-su.age),
			}
		})
	}

	seedOrders := []struct {
		userID int64
		items  []model.OrderItem
		status model.OrderStatus
		age    time.Duration
	}{
		{
			userID: 1,
			items: []model.OrderItem{
				{Name: "Laptop", Quantity: 1, Price: 999.99},
				{Name: "Mouse", Quantity: 1, Price: 29.99},
			},
			status: model.OrderStatusCompleted,
			age:    10 * 24 * time.Hour,
		},
		{
			userID: 2,
			items: []model.OrderItem{
				{Name: "Keyboard", Quantity: 1, Price: 89.99},
			},
			status: model.OrderStatusPending,
			age:    2 * 24 * time.Hour,
		},
	}

	for _, so := range seedOrders {
		order := s.orders.Insert(func(id int64) model.Order {
			return model.Order{
				ID:        id,
				UserID:    so.userID,
				Items:     so.items,
				Total:     model.OrderTotal(so.items),
				Status:    so.status,
				CreatedAt: now.Add(-so.age),
			}
		})
		s.byUser.Append(so.userID, order.ID)
	}

	s.logger.Info("data_seeded",
		"users", s.users.Len(),
		"orders", s.orders.Len(),
	)
}

// Reset clears all stores, resets the identifier counters and reloads the
// example data set. The stores stay usable throughout.
func (s *Service) Reset() {
	s.users.Clear()
	s.orders.Clear()
	s.byUser.Clear()
	s.emails.Clear()
	s.Seed()

	s.metrics.IncDataReset()
	s.logger.Info("data_reset")
}
