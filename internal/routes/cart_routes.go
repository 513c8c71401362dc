package routes

import (
	"little_lemon/internal/controllers"
	"little_lemon/internal/middleware"

	"github.com/gin-gonic/gin"
)

func CartRoutes(r *gin.Engine) {
	cart := r.Group("/cart")
	cart.Use(middleware.RequireAuth())
	{
		cart.GET("/menu-items", controllers.ListCartItems)
		cart.POST("/menu-items", controllers.AddToCart)
		cart.DELETE("/menu-items", controllers.ClearCart)
	}
}
