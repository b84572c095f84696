package stock

import (
	"context"
	"fmt"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
)

// ProductReader reads live product state. The GORM implementation lives in
// this package; tests substitute a fake.
type ProductReader interface {
	ProductByID(ctx context.Context, id uint) (*models.Product, error)
}

// ErrProductNotFound is returned by CheckAdd when the product has left the
// catalog between page load and the add click.
var ErrProductNotFound = fmt.Errorf("product not found")

// UnavailableError reports that an add-to-cart request cannot be satisfied
// by the product's current stock.
type UnavailableError struct {
	Product   string
	Remaining int // units still addable on top of what the cart holds
}

func (e *UnavailableError) Error() string {
	if e.Remaining <= 0 {
		return fmt.Sprintf("%s is out of stock", e.Product)
	}
	return fmt.Sprintf("only %d more units of %s can be added", e.Remaining, e.Product)
}

// CanAddQuantity reports whether requested more units of the product fit on
// top of inCart units already held. A product flagged out of stock, or with
// zero stock, never accepts an add.
func CanAddQuantity(p *models.Product, requested, inCart int) bool {
	if p == nil || !p.Available() || requested < 1 {
		return false
	}
	return p.Stock-inCart >= requested
}

// Validator gives early, optimistic feedback on cart additions. It re-reads
// live stock so a product that sold out after page load is caught at the add
// click. The final go/no-go decision belongs to the atomic placement
// operation; this check only avoids obviously-futile additions.
type Validator struct {
	products ProductReader
}

func NewValidator(products ProductReader) *Validator {
	return &Validator{products: products}
}

// CheckAdd re-reads the product and verifies requested units fit on top of
// inCart. On success it returns the live product so callers can snapshot
// current name, price and image into the cart line.
func (v *Validator) CheckAdd(ctx context.Context, productID uint, requested, inCart int) (*models.Product, error) {
	product, err := v.products.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !CanAddQuantity(product, requested, inCart) {
		remaining := product.Stock - inCart
		if !product.Available() {
			remaining = 0
		}
		return nil, &UnavailableError{Product: product.Name, Remaining: remaining}
	}
	return product, nil
}
