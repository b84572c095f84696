package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts lists products, newest first.
// Query params: category, in_stock, page, page_size.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Order("created_at DESC")

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if c.Query("in_stock") == "true" {
			query = query.Where("in_stock = ? AND stock > 0", true)
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "24"))
		if pageSize < 1 || pageSize > 100 {
			pageSize = 24
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var products []models.Product
		if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":  products,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		})
	}
}

// GetCategories lists the distinct category labels in use.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Distinct("category").
			Where("category <> ''").
			Order("category").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
