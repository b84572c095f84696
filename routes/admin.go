package routes

import (
	adminController "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/admin"
	cartControllers "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/cart"
	orderControllers "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/order"
	productcontroller "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/product"
	userControllers "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/user"
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, feed *orderControllers.OrderFeed) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", feed.Handler) // live order feed
		}

		// ─────────── Promotions ───────────
		promoAdmin := adminGroup.Group("/promotions")
		{
			promoAdmin.POST("", adminController.CreatePromotion(db))
			promoAdmin.GET("", adminController.GetPromotions(db))
			promoAdmin.PUT("/:id", adminController.UpdatePromotion(db))
			promoAdmin.DELETE("/:id", adminController.DeletePromotion(db))
		}

		// ─────────── Messages ───────────
		messageAdmin := adminGroup.Group("/messages")
		{
			messageAdmin.GET("", adminController.GetMessages(db))
			messageAdmin.PUT("/:id/read", adminController.MarkMessageRead(db))
			messageAdmin.DELETE("/:id", adminController.DeleteMessage(db))
		}

		// ─────────── Customer Carts ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
