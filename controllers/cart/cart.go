package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/cart"
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/stock"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddCartItemInput is a fully-formed line: product, variant selection and a
// quantity of at least 1.
type AddCartItemInput struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
}

type UpdateQuantityInput struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity"` // <= 0 removes the line
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
}

// ownerID is the cart owner set by the auth middleware: a user id or a
// guest id, both keyed the same way.
func ownerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := v.(string)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// lineKey reads the variant filters from query params. Omitted size/color
// match only a line added without that variant, never all variants.
func lineKey(c *gin.Context) (cart.LineKey, error) {
	idParam := c.Param("product_id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return cart.LineKey{}, errors.New("invalid product_id")
	}
	return cart.LineKey{
		ProductID: uint(id),
		Size:      c.Query("size"),
		Color:     c.Query("color"),
	}, nil
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	backend := cart.NewRemoteBackend(db)
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}
		items, err := backend.Load(c.Request.Context(), owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if items == nil {
			items = []models.CartItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/cart
//
// Re-reads live stock before permitting the add, closing the window where a
// product sells out between page load and click. Checkout re-validates
// independently inside the placement transaction.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	backend := cart.NewRemoteBackend(db)
	validator := stock.NewValidator(stock.GormProducts{DB: db})
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := c.Request.Context()
		key := cart.LineKey{ProductID: input.ProductID, Size: input.SelectedSize, Color: input.SelectedColor}

		held := 0
		existing, err := backend.Load(ctx, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		for _, it := range existing {
			if cart.KeyOf(it) == key {
				held = it.Quantity
				break
			}
		}

		product, err := validator.CheckAdd(ctx, input.ProductID, input.Quantity, held)
		if err != nil {
			var unavailable *stock.UnavailableError
			switch {
			case errors.Is(err, stock.ErrProductNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			case errors.As(err, &unavailable):
				c.JSON(http.StatusConflict, gin.H{"error": unavailable.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		if !product.HasSize(input.SelectedSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Selected size is not available for this product"})
			return
		}
		if !product.HasColor(input.SelectedColor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Selected color is not available for this product"})
			return
		}

		item := models.CartItem{
			ProductID:     product.ID,
			ProductName:   product.Name,
			ProductImage:  product.FirstImage(),
			ProductPrice:  product.Price,
			Category:      product.Category,
			SelectedSize:  input.SelectedSize,
			SelectedColor: input.SelectedColor,
			Quantity:      input.Quantity,
			AddedAt:       time.Now(),
		}
		if err := backend.Upsert(ctx, owner, item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		items, err := backend.Load(ctx, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusCreated, items)
	}
}

// PUT /user/cart
func UpdateCartQuantity(db *gorm.DB) gin.HandlerFunc {
	backend := cart.NewRemoteBackend(db)
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := c.Request.Context()
		key := cart.LineKey{ProductID: input.ProductID, Size: input.SelectedSize, Color: input.SelectedColor}

		// A non-positive quantity removes the line; no line with quantity
		// below 1 is ever stored.
		var err error
		if input.Quantity <= 0 {
			err = backend.Remove(ctx, owner, key)
		} else {
			err = backend.SetQuantity(ctx, owner, key, input.Quantity)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		items, err := backend.Load(ctx, owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// DELETE /user/cart/:product_id?size=&color=
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	backend := cart.NewRemoteBackend(db)
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}
		key, err := lineKey(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := backend.Remove(c.Request.Context(), owner, key); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	backend := cart.NewRemoteBackend(db)
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			return
		}
		if err := backend.Clear(c.Request.Context(), owner); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(db *gorm.DB) gin.HandlerFunc {
	backend := cart.NewRemoteBackend(db)
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		items, err := backend.Load(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if items == nil {
			items = []models.CartItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}
