package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/cart"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Wishlists require a durable account. Guest tokens carry role "guest"; the
// handlers below reject them with a prompt to sign in, before any
// persistence call.
func requireAccount(c *gin.Context) (string, bool) {
	owner, ok := ownerID(c)
	if !ok {
		return "", false
	}
	if role, _ := c.Get("role"); role == "guest" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to use the wishlist"})
		return "", false
	}
	return owner, true
}

// ToggleWishlist handles POST /user/wishlist/:product_id and flips membership.
func ToggleWishlist(db *gorm.DB) gin.HandlerFunc {
	wl := cart.NewRemoteWishlist(db)
	return func(c *gin.Context) {
		userID, ok := requireAccount(c)
		if !ok {
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		ctx := c.Request.Context()
		ids, err := wl.Load(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		present := false
		for _, id := range ids {
			if id == uint(productID) {
				present = true
				break
			}
		}

		if present {
			err = wl.Remove(ctx, userID, uint(productID))
		} else {
			err = wl.Add(ctx, userID, uint(productID))
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product_id": productID, "wishlisted": !present})
	}
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	wl := cart.NewRemoteWishlist(db)
	return func(c *gin.Context) {
		userID, ok := requireAccount(c)
		if !ok {
			return
		}
		ids, err := wl.Load(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}
		if ids == nil {
			ids = []uint{}
		}
		c.JSON(http.StatusOK, gin.H{"product_ids": ids})
	}
}
