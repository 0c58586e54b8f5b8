package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/controllers"
	"github.com/humspot/api-go/mail"
	"github.com/humspot/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, mailer mail.Mailer) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	activityController := controllers.NewActivityController(db)
	interactionController := controllers.NewInteractionController(db)
	ratingController := controllers.NewRatingController(db)
	commentController := controllers.NewCommentController(db)
	submissionController := controllers.NewSubmissionController(db, mailer, activityController)
	uploadController := controllers.NewUploadController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/google", authController.GoogleLogin)
		public.POST("/auth/guest", authController.GuestLogin)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupUserRoutes(protected, userController)
		SetupActivityRoutes(protected, activityController)
		SetupInteractionRoutes(protected, interactionController, ratingController, commentController)
		SetupSubmissionRoutes(protected, submissionController)
		SetupUploadRoutes(protected, uploadController)
	}
}
