package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/controllers"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController, ratingController *controllers.RatingController, commentController *controllers.CommentController) {
	activities := protected.Group("/activities")
	{
		activities.POST("/:activityId/favorite", interactionController.ToggleFavorite)
		activities.POST("/:activityId/visited", interactionController.ToggleVisited)
		activities.POST("/:activityId/rsvp", interactionController.ToggleRSVP)
		activities.GET("/:activityId/interactions", interactionController.GetInteractionStatus)

		activities.POST("/:activityId/rating", ratingController.SubmitRating)
		activities.GET("/:activityId/rating", ratingController.GetMyRating)

		activities.POST("/:activityId/comments", commentController.AddComment)
		activities.GET("/:activityId/comments/:page", commentController.GetActivityComments)
	}

	me := protected.Group("/users/me")
	{
		me.GET("/favorites/:page", interactionController.GetMyFavorites)
		me.GET("/visited/:page", interactionController.GetMyVisited)
		me.GET("/rsvps/:page", interactionController.GetMyRSVPs)
	}

	protected.DELETE("/comments/:commentId", commentController.DeleteComment)
}
