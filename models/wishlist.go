package models

import "time"

// WishlistEntry is a (user, product) pair. Membership is toggled by
// insert/delete only; there is nothing to update.
type WishlistEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_wishlist_entry,priority:1" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_entry,priority:2" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
