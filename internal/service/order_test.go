package service

import (
	"errors"
	"math"
	"testing"

	"github.com/orderdesk/orderdesk/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCreateOrder(t *testing.T) {
	svc := newSeededService()

	items := []model.OrderItem{
		{Name: "Phone", Quantity: 1, Price: 599.99},
		{Name: "Case", Quantity: 2, Price: 19.99},
	}

	order, err := svc.CreateOrder(1, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.ID != 3 {
		t.Errorf("expected order id 3 after seed, got %d", order.ID)
	}
	if order.UserID != 1 {
		t.Errorf("expected userId 1, got %d", order.UserID)
	}
	if order.Status != model.OrderStatusPending {
		t.Errorf("expected new order to be PENDING, got %s", order.Status)
	}
	if !almostEqual(order.Total, 639.97) {
		t.Errorf("expected total 639.97, got %v", order.Total)
	}
	if len(order.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(order.Items))
	}
}

func TestCreateOrderForMissingUser(t *testing.T) {
	svc := newSeededService()
	before := svc.OrderCount()

	_, err := svc.CreateOrder(999, []model.OrderItem{{Name: "Phone", Quantity: 1, Price: 1.0}})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if svc.OrderCount() != before {
		t.Errorf("failed creation must not mutate the order store: %d -> %d", before, svc.OrderCount())
	}
}

func TestCreateOrderRejectsBadItems(t *testing.T) {
	svc := newSeededService()

	tests := []struct {
		name    string
		items   []model.OrderItem
		wantErr error
	}{
		{"nil_items", nil, ErrEmptyOrder},
		{"empty_items", []model.OrderItem{}, ErrEmptyOrder},
		{"zero_quantity", []model.OrderItem{{Name: "Phone", Quantity: 0, Price: 1.0}}, ErrInvalidOrderItem},
		{"negative_price", []model.OrderItem{{Name: "Phone", Quantity: 1, Price: -1.0}}, ErrInvalidOrderItem},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.CreateOrder(1, test.items)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestCreateOrderAllowsFreeItems(t *testing.T) {
	svc := newSeededService()

	order, err := svc.CreateOrder(2, []model.OrderItem{{Name: "Sticker", Quantity: 3, Price: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Total != 0 {
		t.Errorf("expected total 0, got %v", order.Total)
	}
}

func TestListOrders(t *testing.T) {
	svc := newSeededService()

	orders, err := svc.ListOrders(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 seeded order, got %d", len(orders))
	}
	if !almostEqual(orders[0].Total, 1029.98) {
		t.Errorf("expected seeded total 1029.98, got %v", orders[0].Total)
	}
	if orders[0].Status != model.OrderStatusCompleted {
		t.Errorf("expected seeded order COMPLETED, got %s", orders[0].Status)
	}
}

func TestListOrdersEmptyIsNotNil(t *testing.T) {
	svc := newSeededService()

	orders, err := svc.ListOrders(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(orders) != 0 {
		t.Errorf("expected no orders for user 3, got %d", len(orders))
	}
}

func TestListOrdersMissingUser(t *testing.T) {
	svc := newSeededService()

	if _, err := svc.ListOrders(42); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestOrdersPreserveItemOrder(t *testing.T) {
	svc := newSeededService()

	items := []model.OrderItem{
		{Name: "z-last-name-first-line", Quantity: 1, Price: 1},
		{Name: "a-first-name-second-line", Quantity: 1, Price: 2},
	}
	order, err := svc.CreateOrder(1, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Items[0].Name != items[0].Name || order.Items[1].Name != items[1].Name {
		t.Errorf("item order not preserved: %v", order.Items)
	}
}
