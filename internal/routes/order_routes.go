package routes

import (
	"little_lemon/internal/controllers"
	"little_lemon/internal/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth())
	{
		orders.GET("", controllers.ListOrders)
		orders.GET("/:id", controllers.GetOrder)
		orders.PATCH("/:id", controllers.PatchOrder)
		orders.DELETE("/:id", controllers.DeleteOrder)
	}
}
