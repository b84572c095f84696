package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	Images      *[]string `json:"images"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	Stock       *int      `json:"stock"`
	Rating      *float64  `json:"rating"`
	Reviews     *int      `json:"reviews"`
}

// PUT /admin/products/:id
//
// Updates live product state only. Cart and order lines keep the snapshot
// taken when they were created.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Sizes != nil {
			product.Sizes = *input.Sizes
		}
		if input.Colors != nil {
			product.Colors = *input.Colors
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
			product.InStock = *input.Stock > 0
		}
		if input.Rating != nil {
			product.Rating = *input.Rating
		}
		if input.Reviews != nil {
			product.Reviews = *input.Reviews
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
