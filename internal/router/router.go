package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Nhongkham198/SGdelivery/internal/auth"
	"github.com/Nhongkham198/SGdelivery/internal/menu"
	"github.com/Nhongkham198/SGdelivery/internal/middleware"
	"github.com/Nhongkham198/SGdelivery/internal/order"
)

// New wires all routes onto a fresh engine. Environment-dependent middleware
// (CORS) is passed in so it runs ahead of every route.
func New(
	menuHandler *menu.Handler,
	orderHandler *order.Handler,
	authHandler *auth.Handler,
	mw ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()
	r.Use(mw...)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Storefront (public)
	r.GET("/menu", menuHandler.GetMenu)
	r.GET("/config", menuHandler.GetConfig)
	r.POST("/orders", orderHandler.Place)
	r.POST("/orders/:id/slip", orderHandler.UploadSlip)

	// Owner session
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// Owner-only
	owner := r.Group("/owner", middleware.AuthMiddleware(), middleware.RequireOwner())
	{
		owner.POST("/menu/refresh", menuHandler.Refresh)
		owner.GET("/orders", orderHandler.List)
		owner.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	}

	return r
}
