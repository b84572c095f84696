package routes

import (
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints. Account sign-in is
// handled by the identity provider; the API only issues guest sessions.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
