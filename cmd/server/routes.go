package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"swift-parcel.backend/internal/interfaces/http/handlers"
	"swift-parcel.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	userHandler    *handlers.UserHandler
	parcelHandler  *handlers.ParcelHandler
	riderHandler   *handlers.RiderHandler
	paymentHandler *handlers.PaymentHandler
	authMiddleware gin.HandlerFunc
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Users and directory
	users := r.Group("/users")
	{
		users.POST("", d.userHandler.CreateUser)
		users.GET("/role/:email", d.userHandler.GetRole)
		users.GET("/search", d.authMiddleware, middleware.RequireAdmin(), d.userHandler.SearchUsers)
		users.PATCH("/make-admin/:email", d.authMiddleware, middleware.RequireAdmin(), d.userHandler.MakeAdmin)
		users.PATCH("/remove-admin/:email", d.authMiddleware, middleware.RequireAdmin(), d.userHandler.RemoveAdmin)
	}

	// Parcels
	parcels := r.Group("/parcels")
	{
		parcels.POST("", d.parcelHandler.CreateParcel)
		parcels.GET("", d.authMiddleware, d.parcelHandler.ListParcels)
		parcels.GET("/:id", d.authMiddleware, d.parcelHandler.GetParcel)
		parcels.DELETE("/:id", d.parcelHandler.DeleteParcel)
		parcels.PATCH("/assign/:id", d.authMiddleware, middleware.RequireAdmin(), d.parcelHandler.AssignRider)
	}

	// Riders
	riders := r.Group("/riders")
	{
		riders.POST("", d.riderHandler.Apply)
		riders.GET("/pending", d.authMiddleware, middleware.RequireAdmin(), d.riderHandler.ListPending)
		riders.GET("/active", d.authMiddleware, middleware.RequireAdmin(), d.riderHandler.ListActive)
		riders.GET("/by-district", d.authMiddleware, middleware.RequireAdmin(), d.riderHandler.ListByDistrict)
		riders.PATCH("/:id", d.authMiddleware, middleware.RequireAdmin(), d.riderHandler.UpdateStatus)
	}

	// Payments
	r.POST("/create-payment-intent", d.paymentHandler.CreateIntent)
	r.POST("/payments", middleware.IdempotencyMiddleware(), d.paymentHandler.ConfirmPayment)
	r.GET("/payments", d.authMiddleware, d.paymentHandler.History)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
