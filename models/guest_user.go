package models

import "time"

// GuestUser is a short-lived anonymous identity. Guest carts hang off the
// guest id like user carts; wishlists require a durable account and are
// rejected for guests.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
