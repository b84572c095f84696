package checkout

import (
	"errors"
	"fmt"
)

// Placement failures are tagged error types rather than substrings matched
// out of a message, so the HTTP layer can branch without brittle string
// checks. The Error() strings keep the wording existing storefront clients
// pattern-match on ("out of stock", "not found in our catalog", "units of",
// "must be logged in").

// ErrNotAuthenticated rejects placement without a signed-in identity. The
// handler layer checks this too; the placer re-checks as defense in depth.
var ErrNotAuthenticated = errors.New("you must be logged in to place an order")

// ErrEmptyCart rejects placement of an empty cart before any remote call.
var ErrEmptyCart = errors.New("your cart is empty")

// ErrSubmissionInFlight guards against duplicate submission while a previous
// placement for the same coordinator is still outstanding.
var ErrSubmissionInFlight = errors.New("an order submission is already in progress")

// OutOfStockError: the product's stock flag is off or its stock is zero.
type OutOfStockError struct {
	ProductID uint
	Name      string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("%s is out of stock", e.Name)
}

// ProductNotFoundError: a cart line references a product no longer in the
// catalog.
type ProductNotFoundError struct {
	ProductID uint
	Name      string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("%s was not found in our catalog", e.Name)
}

// InsufficientStockError: the product exists and is sellable but fewer units
// remain than the line requests.
type InsufficientStockError struct {
	ProductID uint
	Name      string
	Requested int
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d units of %s remain", e.Remaining, e.Name)
}

// UserMessage maps a placement failure to the short, actionable notice shown
// to the shopper. Business-rule rejections are surfaced verbatim; anything
// unclassified gets a generic retry message and the raw error stays in the
// logs only.
func UserMessage(err error) string {
	var oos *OutOfStockError
	var insufficient *InsufficientStockError
	var notFound *ProductNotFoundError
	var invalid *ValidationError
	switch {
	case errors.As(err, &invalid):
		return invalid.Error()
	case errors.As(err, &oos):
		return oos.Error()
	case errors.As(err, &insufficient):
		return insufficient.Error()
	case errors.As(err, &notFound):
		return "Some items in your cart are no longer available. Please refresh your cart and try again."
	case errors.Is(err, ErrNotAuthenticated):
		return "Please sign in to place your order."
	case errors.Is(err, ErrEmptyCart):
		return "Your cart is empty."
	case errors.Is(err, ErrSubmissionInFlight):
		return "Your order is already being placed."
	default:
		return "Something went wrong while placing your order. Please try again."
	}
}
