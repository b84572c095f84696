package adminController

import (
	"net/http"

	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactMessageInput struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"max=200"`
	Body    string `json:"body" binding:"required,max=5000"`
}

// CreateMessage handles POST /contact, the public contact form.
func CreateMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactMessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		msg := models.Message{
			Name:    input.Name,
			Email:   input.Email,
			Subject: input.Subject,
			Body:    input.Body,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Message sent"})
	}
}

// GET /admin/messages?unread=true
func GetMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Order("created_at DESC")
		if c.Query("unread") == "true" {
			query = query.Where("read = ?", false)
		}
		var messages []models.Message
		if err := query.Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// PUT /admin/messages/:id/read
func MarkMessageRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Model(&models.Message{}).Where("id = ?", id).Update("read", true)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
	}
}

// DELETE /admin/messages/:id
func DeleteMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		result := db.Delete(&models.Message{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete message"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
	}
}
