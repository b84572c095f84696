package routes

import (
	adminController "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/admin"
	productcontroller "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetCategories(db))
	r.GET("/promotions", adminController.GetLivePromotions(db))
	r.POST("/contact", adminController.CreateMessage(db))
}
