package models

import "time"

type OrderStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the back office
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// Payment methods. Cash on delivery is currently the only accepted value.
const PaymentMethodCOD = "cod"

// ShippingAddress is embedded into every order so later profile edits never
// rewrite where a historical order was shipped.
type ShippingAddress struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Order is an immutable snapshot created once by the atomic placement
// operation. Line items and totals are never mutated afterwards; only the
// status transitions via the back office.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderRef      string          `gorm:"uniqueIndex" json:"order_ref"`
	UserID        string          `gorm:"not null;index" json:"user_id"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64         `json:"subtotal"`
	ShippingFee   float64         `json:"shipping_fee"`
	TotalAmount   float64         `json:"total_amount"`
	Status        OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Shipping      ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderItem carries the product snapshot copied from the cart line at
// placement time, so later product edits do not alter historical orders.
type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"order_id"`
	ProductID     uint    `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductImage  string  `json:"product_image"`
	UnitPrice     float64 `json:"unit_price"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
}
