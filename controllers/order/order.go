package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/cart"
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/checkout"
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CheckoutInput struct {
	Shipping      checkout.ShippingForm `json:"shipping"`
	PaymentMethod string                `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// checkoutStatus picks the HTTP status for a placement failure. The response
// body always carries checkout.UserMessage, never the raw error.
func checkoutStatus(err error) int {
	var invalid *checkout.ValidationError
	var oos *checkout.OutOfStockError
	var insufficient *checkout.InsufficientStockError
	var notFound *checkout.ProductNotFoundError
	switch {
	case errors.As(err, &invalid), errors.Is(err, checkout.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &oos), errors.As(err, &insufficient),
		errors.As(err, &notFound), errors.Is(err, checkout.ErrSubmissionInFlight):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// -------- Handlers --------

// POST /user/checkout
//
// Guest checkout is disabled: the route group only admits account tokens.
// The coordinator re-checks identity anyway, and the placement transaction
// is the final authority on stock.
func CheckoutHandler(db *gorm.DB, coord *checkout.Coordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": checkout.UserMessage(checkout.ErrNotAuthenticated)})
			return
		}
		userID, _ := userIDVal.(string)
		if role, _ := c.Get("role"); role == "guest" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": checkout.UserMessage(checkout.ErrNotAuthenticated)})
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ctx := c.Request.Context()
		store := cart.NewStore(cart.NewRemoteBackend(db), cart.NewRemoteWishlist(db))
		if err := store.SignIn(ctx, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}

		result, err := coord.Checkout(ctx, store, userID, input.Shipping, input.PaymentMethod)
		if err != nil {
			c.JSON(checkoutStatus(err), gin.H{"error": checkout.UserMessage(err)})
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderHandler handles GET /user/orders/:orderRef and accepts a numeric id
// or an order ref.
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		ref := c.Param("orderRef")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderRef is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("user_id = ?", userID).
			Where("id::text = ? OR order_ref = ?", ref, ref).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
//
// The only mutation an order ever sees; line items and totals stay frozen.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		result := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
