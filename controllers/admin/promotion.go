package adminController

import (
	"net/http"
	"time"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PromotionInput struct {
	Title       string     `json:"title" binding:"required"`
	ImageURL    string     `json:"image_url"`
	DiscountPct int        `json:"discount_pct" binding:"min=0,max=90"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Active      bool       `json:"active"`
}

// POST /admin/promotions
func CreatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromotionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		promo := models.Promotion{
			Title:       input.Title,
			ImageURL:    input.ImageURL,
			DiscountPct: input.DiscountPct,
			Active:      input.Active,
		}
		if input.StartsAt != nil {
			promo.StartsAt = *input.StartsAt
		}
		if input.EndsAt != nil {
			promo.EndsAt = *input.EndsAt
		}

		if err := db.Create(&promo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promotion"})
			return
		}
		c.JSON(http.StatusCreated, promo)
	}
}

// GET /admin/promotions
func GetPromotions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var promos []models.Promotion
		if err := db.Order("created_at DESC").Find(&promos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get promotions"})
			return
		}
		c.JSON(http.StatusOK, promos)
	}
}

// GetLivePromotions serves the storefront banner strip: active promotions
// inside their display window.
func GetLivePromotions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var promos []models.Promotion
		if err := db.Where("active = ?", true).Order("created_at DESC").Find(&promos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get promotions"})
			return
		}
		now := time.Now()
		live := make([]models.Promotion, 0, len(promos))
		for _, p := range promos {
			if p.Live(now) {
				live = append(live, p)
			}
		}
		c.JSON(http.StatusOK, live)
	}
}

// PUT /admin/promotions/:id
func UpdatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var promo models.Promotion
		if err := db.First(&promo, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		var input PromotionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		promo.Title = input.Title
		promo.ImageURL = input.ImageURL
		promo.DiscountPct = input.DiscountPct
		promo.Active = input.Active
		if input.StartsAt != nil {
			promo.StartsAt = *input.StartsAt
		}
		if input.EndsAt != nil {
			promo.EndsAt = *input.EndsAt
		}

		if err := db.Save(&promo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promotion"})
			return
		}
		c.JSON(http.StatusOK, promo)
	}
}

// DELETE /admin/promotions/:id
func DeletePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Delete(&models.Promotion{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
	}
}
