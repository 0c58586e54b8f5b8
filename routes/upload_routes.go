package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := protected.Group("/uploads")
	{
		uploads.POST("/presign", uploadController.GetPresignedURL)
		// Object keys contain slashes, so the param is a catch-all.
		uploads.DELETE("/*key", uploadController.DeleteFile)
	}
}
