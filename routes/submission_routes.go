package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/controllers"
)

func SetupSubmissionRoutes(protected *gin.RouterGroup, submissionController *controllers.SubmissionController) {
	protected.POST("/submissions", submissionController.CreateSubmission)

	admin := protected.Group("/admin/submissions")
	{
		admin.GET("/page/:page", submissionController.ListPending)
		admin.POST("/:submissionId/approve", submissionController.ApproveSubmission)
		admin.POST("/:submissionId/deny", submissionController.DenySubmission)
	}
}
