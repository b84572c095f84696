package routes

import (
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/checkout"
	cartControllers "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/cart"
	orderControllers "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/order"
	userControllers "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/user"
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
// Guest tokens are admitted for the cart; wishlist and checkout require an
// account and reject guests themselves.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, coordinator *checkout.Coordinator) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))                      // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(db))                 // POST /user/cart
			cartGroup.PUT("/", cartControllers.UpdateCartQuantity(db))           // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id?size=&color=
			cartGroup.DELETE("/", cartControllers.ClearCart(db))                 // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", cartControllers.GetWishlist(db))                   // GET /user/wishlist
			wishlistGroup.POST("/:product_id", cartControllers.ToggleWishlist(db))    // POST /user/wishlist/:product_id
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db, coordinator)) // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))            // GET /user/orders
		userGroup.GET("/orders/:orderRef", orderControllers.GetOrderHandler(db))       // GET /user/orders/:orderRef
	}
}
