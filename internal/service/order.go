package service

import "github.com/orderdesk/orderdesk/internal/model"

// CreateOrder stores a new pending order for an existing user. The order
// total is computed once from its items and never recomputed. Nothing is
// stored when the user is absent or the items are invalid.
func (s *Service) CreateOrder(userID int64, items []model.OrderItem) (model.Order, error) {
	if _, ok := s.users.Get(userID); !ok {
		return model.Order{}, notFound(userID)
	}

	if len(items) == 0 {
		return model.Order{}, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 || item.Price < 0 {
			return model.Order{}, ErrInvalidOrderItem
		}
	}

	copied := make([]model.OrderItem, len(items))
	copy(copied, items)

	order := s.orders.Insert(func(id int64) model.Order {
		return model.Order{
			ID:        id,
			UserID:    userID,
			Items:     copied,
			Total:     model.OrderTotal(copied),
			Status:    model.OrderStatusPending,
			CreatedAt: s.now().UTC(),
		}
	})
	s.byUser.Append(userID, order.ID)

	s.metrics.IncOrderCreated()
	s.logger.Info("order_created",
		"order_id", order.ID,
		"user_id", userID,
		"total", order.Total,
	)

	return order, nil
}

// ListOrders returns all orders of the given user in creation order.
// The slice is never nil.
func (s *Service) ListOrders(userID int64) ([]model.Order, error) {
	if _, ok := s.users.Get(userID); !ok {
		return nil, notFound(userID)
	}
	return s.ordersOf(userID), nil
}

func (s *Service) ordersOf(userID int64) []model.Order {
	ids := s.byUser.ListByParent(userID)
	orders := make([]model.Order, 0, len(ids))
	for _, id := range ids {
		if order, ok := s.orders.Get(id); ok {
			orders = append(orders, order)
		}
	}
	return orders
}
