package checkout

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/notify"
)

// Cart is the slice of the cart store the coordinator needs: the lines to
// submit and the ability to clear them after a successful placement.
type Cart interface {
	Items() []models.CartItem
	ClearCart(ctx context.Context) error
}

// Notifier sends the order confirmation side effect. Send is called on a
// detached goroutine; its failure is logged and never affects the order.
type Notifier interface {
	Send(ctx context.Context, oc notify.OrderConfirmation) error
}

// MultiNotifier fans a confirmation out to several notifiers (email
// function, back-office order feed). Every notifier is attempted; failures
// are joined.
func MultiNotifier(ns ...Notifier) Notifier {
	return multiNotifier(ns)
}

type multiNotifier []Notifier

func (m multiNotifier) Send(ctx context.Context, oc notify.OrderConfirmation) error {
	var errs []error
	for _, n := range m {
		if err := n.Send(ctx, oc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Result is returned to the shopper after a successful placement.
type Result struct {
	OrderID     uint    `json:"order_id"`
	OrderRef    string  `json:"order_ref"`
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
	Total       float64 `json:"total"`
}

// Coordinator converts a validated cart plus shipping form into one atomic
// placement request and runs the post-success side effects in order:
// notification dispatch (detached), cart clear. A failed placement leaves the
// cart untouched. The submission state machine is binary from the caller's
// perspective: idle -> submitting -> idle, with either a Result or an error.
type Coordinator struct {
	placer   OrderPlacer
	notifier Notifier
	log      *log.Logger

	mu       sync.Mutex
	inflight map[string]bool // user ids with a submission outstanding

	// pending tracks detached notification sends so tests and shutdown
	// hooks can wait for them.
	pending sync.WaitGroup
}

const notifyTimeout = 15 * time.Second

func NewCoordinator(placer OrderPlacer, notifier Notifier, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.Default()
	}
	return &Coordinator{placer: placer, notifier: notifier, log: logger, inflight: map[string]bool{}}
}

// Checkout validates preconditions, submits the atomic placement and, on
// success, dispatches the confirmation and clears the cart. On any failure
// the cart is left as it was so the shopper can adjust and retry.
func (co *Coordinator) Checkout(ctx context.Context, crt Cart, userID string, form ShippingForm, paymentMethod string) (*Result, error) {
	if !co.begin(userID) {
		return nil, ErrSubmissionInFlight
	}
	defer co.end(userID)

	items := crt.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCOD
	}
	if paymentMethod != models.PaymentMethodCOD {
		return nil, errors.New("unsupported payment method")
	}

	var subtotal float64
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	fee := ShippingFee(subtotal)

	order, err := co.placer.Place(ctx, PlacementRequest{
		UserID:        userID,
		Subtotal:      subtotal,
		ShippingFee:   fee,
		Total:         subtotal + fee,
		Shipping:      form.ShippingAddress(),
		PaymentMethod: paymentMethod,
		Items:         items,
	})
	if err != nil {
		return nil, err
	}

	co.dispatchConfirmation(order, form)

	if err := crt.ClearCart(ctx); err != nil {
		// The order stands; the stale cart view corrects on next load.
		co.log.Printf("checkout: order %s placed but cart clear failed: %v", order.OrderRef, err)
	}

	return &Result{
		OrderID:     order.ID,
		OrderRef:    order.OrderRef,
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}, nil
}

// dispatchConfirmation fires the notification on a detached goroutine using
// the data just submitted, not a re-read of storage. Failure is logged only;
// the order is never blocked or rolled back by its confirmation email.
func (co *Coordinator) dispatchConfirmation(order *models.Order, form ShippingForm) {
	if co.notifier == nil {
		return
	}
	oc := notify.OrderConfirmation{
		OrderRef:      order.OrderRef,
		CustomerName:  form.FirstName + " " + form.LastName,
		CustomerEmail: form.Email,
		Items:         order.Items,
		Subtotal:      order.Subtotal,
		ShippingFee:   order.ShippingFee,
		Total:         order.TotalAmount,
		Shipping:      order.Shipping,
		PaymentMethod: order.PaymentMethod,
	}
	co.pending.Add(1)
	go func() {
		defer co.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := co.notifier.Send(ctx, oc); err != nil {
			co.log.Printf("checkout: confirmation dispatch failed for order %s: %v", oc.OrderRef, err)
		}
	}()
}

// WaitNotifications blocks until all detached confirmation sends finished.
func (co *Coordinator) WaitNotifications() {
	co.pending.Wait()
}

// begin marks a submission in flight for userID. One outstanding submission
// per shopper; a double click on submit gets ErrSubmissionInFlight instead of
// a second order.
func (co *Coordinator) begin(userID string) bool {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.inflight[userID] {
		return false
	}
	co.inflight[userID] = true
	return true
}

func (co *Coordinator) end(userID string) {
	co.mu.Lock()
	delete(co.inflight, userID)
	co.mu.Unlock()
}
