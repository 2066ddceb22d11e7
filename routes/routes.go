package routes

import (
	"food-delivery-backend/handlers"
	"food-delivery-backend/middleware"
	"food-delivery-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	authHandler := handlers.NewAuthHandler(db)
	publicHandler := handlers.NewPublicHandler(db)
	orderHandler := handlers.NewOrderHandler(
		services.NewOrderService(db),
		services.NewTrackingService(db),
	)
	reviewHandler := handlers.NewReviewHandler(services.NewReviewService(db))

	// ── Public routes ──────────────────────────────────────────────
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/restaurants", publicHandler.ListRestaurants)
	r.GET("/restaurants/:id/menus", publicHandler.ListMenus)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.POST("/orders", orderHandler.PlaceOrder)
		auth.GET("/orders/:id", orderHandler.GetOrder)
		auth.POST("/orders/:id/pay", orderHandler.PayOrder)
		auth.GET("/orders/:id/tracking", orderHandler.TrackOrder)
		auth.POST("/orders/:id/mark-delivered", orderHandler.MarkDelivered)
		auth.POST("/reviews", reviewHandler.SubmitReview)
	}
}
