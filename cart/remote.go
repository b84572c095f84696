package cart

import (
	"context"
	"time"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// remoteBackend persists cart lines in Postgres, one models.Cart row per
// owner with its CartItem children. Guests and signed-in users share the
// same tables; the owner id is the user id or the guest id.
type remoteBackend struct {
	db *gorm.DB
}

// NewRemoteBackend returns a GORM-backed cart backend.
func NewRemoteBackend(db *gorm.DB) Backend {
	return &remoteBackend{db: db}
}

// ensureCart finds the owner's cart row, creating it on first use.
func (r *remoteBackend) ensureCart(ctx context.Context, ownerID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	cart = models.Cart{UserID: ownerID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *remoteBackend) Load(ctx context.Context, ownerID string) ([]models.CartItem, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).Preload("Items").Where("user_id = ?", ownerID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// Upsert inserts the line or, when the composite key already exists, adds the
// incoming quantity to the stored one in a single statement.
func (r *remoteBackend) Upsert(ctx context.Context, ownerID string, item models.CartItem) error {
	cart, err := r.ensureCart(ctx, ownerID)
	if err != nil {
		return err
	}
	item.ID = 0
	item.CartID = cart.CartID
	item.AddedAt = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "cart_id"},
			{Name: "product_id"},
			{Name: "selected_size"},
			{Name: "selected_color"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
			"added_at": item.AddedAt,
		}),
	}).Create(&item).Error
}

func (r *remoteBackend) SetQuantity(ctx context.Context, ownerID string, key LineKey, quantity int) error {
	cart, err := r.ensureCart(ctx, ownerID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("cart_id = ? AND product_id = ? AND selected_size = ? AND selected_color = ?",
			cart.CartID, key.ProductID, key.Size, key.Color).
		Updates(map[string]interface{}{"quantity": quantity, "added_at": time.Now()}).Error
}

func (r *remoteBackend) Remove(ctx context.Context, ownerID string, key LineKey) error {
	cart, err := r.ensureCart(ctx, ownerID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND selected_size = ? AND selected_color = ?",
			cart.CartID, key.ProductID, key.Size, key.Color).
		Delete(&models.CartItem{}).Error
}

func (r *remoteBackend) Clear(ctx context.Context, ownerID string) error {
	cart, err := r.ensureCart(ctx, ownerID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}

// remoteWishlist persists wishlist membership as (user, product) rows.
type remoteWishlist struct {
	db *gorm.DB
}

// NewRemoteWishlist returns a GORM-backed wishlist backend.
func NewRemoteWishlist(db *gorm.DB) WishlistBackend {
	return &remoteWishlist{db: db}
}

func (r *remoteWishlist) Load(ctx context.Context, userID string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.WishlistEntry{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *remoteWishlist) Add(ctx context.Context, userID string, productID uint) error {
	entry := models.WishlistEntry{UserID: userID, ProductID: productID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error
}

func (r *remoteWishlist) Remove(ctx context.Context, userID string, productID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistEntry{}).Error
}
