package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlacementRequest carries everything the atomic placement operation needs:
// identity, totals, the shipping snapshot, the payment method and the full
// line-item list copied from the cart.
type PlacementRequest struct {
	UserID        string
	Subtotal      float64
	ShippingFee   float64
	Total         float64
	Shipping      models.ShippingAddress
	PaymentMethod string
	Items         []models.CartItem
}

// OrderPlacer is the atomic placement boundary: verify every line, decrement
// stock and insert the order as one indivisible unit, or apply nothing and
// return a tagged error.
type OrderPlacer interface {
	Place(ctx context.Context, req PlacementRequest) (*models.Order, error)
}

// GormPlacer implements the atomic placement as a single database
// transaction. Each product row is locked FOR UPDATE before its stock is
// checked and decremented, so concurrent placements against the same product
// serialize and stock can never go negative.
type GormPlacer struct {
	db *gorm.DB
}

func NewGormPlacer(db *gorm.DB) *GormPlacer {
	return &GormPlacer{db: db}
}

func (p *GormPlacer) Place(ctx context.Context, req PlacementRequest) (*models.Order, error) {
	if req.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem
		for _, line := range req.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ProductNotFoundError{ProductID: line.ProductID, Name: line.ProductName}
				}
				return err
			}

			if err := reserveStock(&product, line.Quantity); err != nil {
				return err
			}
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID:     line.ProductID,
				ProductName:   line.ProductName,
				ProductImage:  line.ProductImage,
				UnitPrice:     line.ProductPrice,
				Quantity:      line.Quantity,
				SelectedSize:  line.SelectedSize,
				SelectedColor: line.SelectedColor,
			})
		}

		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        req.UserID,
			Items:         orderItems,
			Subtotal:      req.Subtotal,
			ShippingFee:   req.ShippingFee,
			TotalAmount:   req.Total,
			Status:        models.OrderStatusPending,
			PaymentMethod: req.PaymentMethod,
			Shipping:      req.Shipping,
			CreatedAt:     time.Now(),
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// reserveStock checks the line's quantity against the locked product row and
// decrements on success. Stock can never go negative: a request exceeding the
// remaining units is refused before any mutation.
func reserveStock(product *models.Product, quantity int) error {
	if !product.Available() {
		return &OutOfStockError{ProductID: product.ID, Name: product.Name}
	}
	if product.Stock < quantity {
		return &InsufficientStockError{
			ProductID: product.ID,
			Name:      product.Name,
			Requested: quantity,
			Remaining: product.Stock,
		}
	}
	product.Stock -= quantity
	product.InStock = product.Stock > 0
	return nil
}

// generateOrderRef builds a sortable unique reference, e.g.
// 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
