package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/controllers"
)

func SetupActivityRoutes(protected *gin.RouterGroup, activityController *controllers.ActivityController) {
	activities := protected.Group("/activities")
	{
		activities.POST("/events", activityController.CreateEvent)
		activities.POST("/attractions", activityController.CreateAttraction)
		activities.GET("/events/page/:page", activityController.GetEventsPage)
		activities.GET("/attractions/page/:page", activityController.GetAttractionsPage)
		activities.GET("/:activityId", activityController.GetActivity)
		activities.DELETE("/:activityId", activityController.DeleteActivity)
	}
}
