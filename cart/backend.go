package cart

import (
	"context"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
)

// LineKey identifies a single cart line. Empty Size/Color mean the line was
// added without that variant; keys always match exactly, never "all variants
// of the product".
type LineKey struct {
	ProductID uint
	Size      string
	Color     string
}

// KeyOf extracts the line key from a cart item.
func KeyOf(item models.CartItem) LineKey {
	return LineKey{ProductID: item.ProductID, Size: item.SelectedSize, Color: item.SelectedColor}
}

// Backend is the persistence strategy behind a Store. The in-memory
// implementation serves anonymous sessions and tests; the GORM implementation
// serves signed-in shoppers. Business rules (quantity merge, remove-on-zero)
// live in the Store and are backend-agnostic.
type Backend interface {
	// Load returns all cart lines for ownerID.
	Load(ctx context.Context, ownerID string) ([]models.CartItem, error)

	// Upsert inserts item as a new line, or adds item.Quantity to the
	// quantity of the line matching the same composite key.
	Upsert(ctx context.Context, ownerID string, item models.CartItem) error

	// SetQuantity replaces the quantity of the line matching key.
	// Callers never pass quantity < 1; zero or negative updates are
	// translated into Remove by the Store.
	SetQuantity(ctx context.Context, ownerID string, key LineKey, quantity int) error

	// Remove deletes the line matching key exactly.
	Remove(ctx context.Context, ownerID string, key LineKey) error

	// Clear deletes every line for ownerID.
	Clear(ctx context.Context, ownerID string) error
}

// WishlistBackend persists wishlist membership for authenticated users.
type WishlistBackend interface {
	Load(ctx context.Context, userID string) ([]uint, error)
	Add(ctx context.Context, userID string, productID uint) error
	Remove(ctx context.Context, userID string, productID uint) error
}
