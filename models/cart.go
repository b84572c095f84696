package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`                    // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one cart line. A line is identified by the composite
// (cart, product, selected size, selected color); adding the same variant
// again merges quantities instead of creating a duplicate line. Price, name
// and image are snapshotted at add time.
type CartItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CartID        uint      `gorm:"index;uniqueIndex:idx_cart_line,priority:1" json:"cart_id"`
	ProductID     uint      `gorm:"uniqueIndex:idx_cart_line,priority:2" json:"product_id"`
	ProductName   string    `json:"product_name"`
	ProductImage  string    `json:"product_image"`
	ProductPrice  float64   `json:"product_price"`
	Category      string    `json:"category"`
	SelectedSize  string    `gorm:"uniqueIndex:idx_cart_line,priority:3" json:"selected_size"`  // empty when the product has no size variants
	SelectedColor string    `gorm:"uniqueIndex:idx_cart_line,priority:4" json:"selected_color"` // empty when the product has no color variants
	Quantity      int       `json:"quantity"` // always >= 1
	AddedAt       time.Time `json:"added_at"`
}

// LineTotal is the snapshot price times quantity.
func (i CartItem) LineTotal() float64 {
	return i.ProductPrice * float64(i.Quantity)
}
