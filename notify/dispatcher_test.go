package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
)

func confirmation() OrderConfirmation {
	return OrderConfirmation{
		OrderRef:      "20250908130500-abc",
		CustomerName:  "Ayesha Khan",
		CustomerEmail: "ayesha@example.com",
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Satin Robe", UnitPrice: 2450, Quantity: 2},
		},
		Subtotal:      4900,
		ShippingFee:   250,
		Total:         5150,
		PaymentMethod: models.PaymentMethodCOD,
	}
}

func TestSendPostsConfirmation(t *testing.T) {
	var received OrderConfirmation
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, "secret-key", nil)
	if err := d.Send(context.Background(), confirmation()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if received.OrderRef != "20250908130500-abc" {
		t.Errorf("Expected order ref in payload, got %q", received.OrderRef)
	}
	if received.Total != 5150 {
		t.Errorf("Expected total 5150, got %.2f", received.Total)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("Expected bearer auth header, got %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Expected JSON content type, got %q", gotContentType)
	}
}

func TestSendReportsProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, "", nil)
	err := d.Send(context.Background(), confirmation())
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("Expected status code in error, got %q", err.Error())
	}
}

func TestSendUnreachableEndpoint(t *testing.T) {
	d := NewDispatcher("http://127.0.0.1:1/nope", "", nil)
	if err := d.Send(context.Background(), confirmation()); err == nil {
		t.Fatal("Expected error for unreachable endpoint")
	}
}

// A dispatcher without an endpoint drops payloads so local setups work
// without the email function.
func TestSendSkipsWhenUnconfigured(t *testing.T) {
	d := NewDispatcher("", "", nil)
	if err := d.Send(context.Background(), confirmation()); err != nil {
		t.Errorf("Expected silent skip, got: %v", err)
	}
}
