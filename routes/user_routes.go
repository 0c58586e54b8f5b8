package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/controllers"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	admin := protected.Group("/admin/users")
	{
		admin.PUT("/:userId/status", userController.UpdateAccountStatus)
		admin.PUT("/:userId/type", userController.UpdateAccountType)
	}
}
