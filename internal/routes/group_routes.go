package routes

import (
	"little_lemon/internal/controllers"
	"little_lemon/internal/middleware"
	"little_lemon/internal/models"

	"github.com/gin-gonic/gin"
)

// GroupRoutes exposes every group-administration surface over the one
// membership service. All of it requires the platform admin capability.
func GroupRoutes(r *gin.Engine) {
	admin := r.Group("/")
	admin.Use(middleware.RequireAuth(), middleware.RequireAdmin())
	{
		admin.GET("/groups/manager/users", controllers.GroupMembers(models.GroupManager))
		admin.POST("/groups/manager/users", controllers.GroupAddMember(models.GroupManager))
		admin.DELETE("/groups/manager/users/:userId", controllers.GroupRemoveMember(models.GroupManager))

		admin.GET("/groups/delivery-crew/users", controllers.GroupMembers(models.GroupDeliveryCrew))
		admin.POST("/groups/delivery-crew/users", controllers.GroupAddMember(models.GroupDeliveryCrew))
		admin.DELETE("/groups/delivery-crew/users/:userId", controllers.GroupRemoveMember(models.GroupDeliveryCrew))

		admin.POST("/users/:id/groups", controllers.AddToGroup)
		admin.DELETE("/users/:id/groups", controllers.RemoveFromGroup)

		// legacy single-role endpoint, kept for old clients
		admin.POST("/manager", controllers.LegacyManager)
		admin.DELETE("/manager", controllers.LegacyManager)
	}
}
