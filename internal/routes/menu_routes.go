package routes

import (
	"little_lemon/internal/controllers"
	"little_lemon/internal/middleware"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(r *gin.Engine) {
	read := r.Group("/menu-items")
	read.Use(middleware.RequireAuth())
	{
		read.GET("", controllers.ListMenuItems)
		read.GET("/:id", controllers.GetMenuItem)
	}

	write := r.Group("/menu-items")
	write.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		write.POST("", controllers.CreateMenuItem)
		write.PUT("/:id", controllers.UpdateMenuItem)
		write.PATCH("/:id", controllers.UpdateMenuItem)
		write.DELETE("/:id", controllers.DeleteMenuItem)
	}
}
