package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/orderdesk/orderdesk/internal/handler/dto"
	"github.com/orderdesk/orderdesk/internal/model"
)

func TestOrderHandlerList(t *testing.T) {
	h := NewOrderHandler(newSeededService(), testLogger())

	req := withID(httptest.NewRequest(http.MethodGet, "/api/v1/users/1/orders", nil), "1")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var orders []model.Order
	if err := json.NewDecoder(rec.Body).Decode(&orders); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].UserID != 1 {
		t.Errorf("expected userId 1, got %d", orders[0].UserID)
	}
}

func TestOrderHandlerListEmptyIsJSONArray(t *testing.T) {
	h := NewOrderHandler(newSeededService(), testLogger())

	// User 3 has no orders.
	req := withID(httptest.NewRequest(http.MethodGet, "/api/v1/users/3/orders", nil), "3")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestOrderHandlerListUserNotFound(t *testing.T) {
	h := NewOrderHandler(newSeededService(), testLogger())

	req := withID(httptest.NewRequest(http.MethodGet, "/api/v1/users/42/orders", nil), "42")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "user 42 not found" {
		t.Errorf("unexpected error message: %q", resp.Error)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	h := NewOrderHandler(newSeededService(), testLogger())

	body := `{"items":[{"name":"Phone","quantity":1,"price":599.99}]}`
	req := withID(httptest.NewRequest(http.MethodPost, "/api/v1/users/1/orders", strings.NewReader(body)), "1")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var order model.Order
	if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if order.ID != 3 {
		t.Errorf("expected order id 3 after seed, got %d", order.ID)
	}
	if math.Abs(order.Total-599.99) > 1e-9 {
		t.Errorf("expected total 599.99, got %v", order.Total)
	}
	if order.Status != model.OrderStatusPending {
		t.Errorf("expected PENDING status, got %s", order.Status)
	}
}

func TestOrderHandlerCreateEmptyItems(t *testing.T) {
	h := NewOrderHandler(newSeededService(), testLogger())

	req := withID(httptest.NewRequest(http.MethodPost, "/api/v1/users/1/orders", strings.NewReader(`{"items":[]}`)), "1")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error == "" || resp.Timestamp <= 0 {
		t.Errorf("expected error body with message and timestamp, got %+v", resp)
	}
}

func TestOrderHandlerCreateUserNotFound(t *testing.T) {
	h := NewOrderHandler(newSeededService(), testLogger())

	body := `{"items":[{"name":"Phone","quantity":1,"price":599.99}]}`
	req := withID(httptest.NewRequest(http.MethodPost, "/api/v1/users/42/orders", strings.NewReader(body)), "42")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestOrderHandlerCreateMalformedBody(t *testing.T) {
	h := NewOrderHandler(newSeededService(), testLogger())

	req := withID(httptest.NewRequest(http.MethodPost, "/api/v1/users/1/orders", strings.NewReader("{not json")), "1")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
