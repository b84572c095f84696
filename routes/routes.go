package routes

import (
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/checkout"
	orderControllers "github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/controllers/order"
	"github.com/Shahrukh-Ishtiaq/Elegant-Lady-sub000/notify"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, auth, user
// and admin route groups. The checkout coordinator and the back-office order
// feed are built once here and shared.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	feed := orderControllers.NewOrderFeed()
	coordinator := checkout.NewCoordinator(
		checkout.NewGormPlacer(db),
		checkout.MultiNotifier(notify.NewDispatcherFromEnv(nil), feed),
		nil,
	)

	SetupPublicRoutes(r, db)
	SetupAuthRoutes(r, db)
	SetupUserRoutes(r, db, coordinator)
	SetupAdminRoutes(r, db, feed)
}
