package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
)

// OrderConfirmation is the payload posted to the external email function
// after a successful placement. It is built from the data just submitted,
// never re-read from storage, to avoid racing eventual consistency.
type OrderConfirmation struct {
	OrderRef      string                 `json:"order_ref"`
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email"`
	Items         []models.OrderItem     `json:"items"`
	Subtotal      float64                `json:"subtotal"`
	ShippingFee   float64                `json:"shipping_fee"`
	Total         float64                `json:"total"`
	Shipping      models.ShippingAddress `json:"shipping"`
	PaymentMethod string                 `json:"payment_method"`
}

// Dispatcher posts order confirmations to the transactional email function.
// Delivery is best effort: the caller fires it once per order, logs failures
// and never retries. A Dispatcher with an empty endpoint drops payloads
// silently, so local setups work without the email function.
type Dispatcher struct {
	endpoint string
	apiKey   string
	client   *http.Client
	log      *log.Logger
}

func NewDispatcher(endpoint, apiKey string, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
		log:      logger,
	}
}

// NewDispatcherFromEnv reads ORDER_EMAIL_ENDPOINT and ORDER_EMAIL_API_KEY.
func NewDispatcherFromEnv(logger *log.Logger) *Dispatcher {
	return NewDispatcher(os.Getenv("ORDER_EMAIL_ENDPOINT"), os.Getenv("ORDER_EMAIL_API_KEY"), logger)
}

// Send posts the confirmation and reports delivery-provider failures as
// errors. Callers treat any error as log-only.
func (d *Dispatcher) Send(ctx context.Context, oc OrderConfirmation) error {
	if d.endpoint == "" {
		d.log.Printf("notify: no email endpoint configured, skipping confirmation for order %s", oc.OrderRef)
		return nil
	}

	payload, err := json.Marshal(oc)
	if err != nil {
		return fmt.Errorf("marshal confirmation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("build confirmation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("reach email function: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email function returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
