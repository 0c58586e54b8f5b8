package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/humspot/api-go/models"
	"github.com/humspot/api-go/utils"
	"gorm.io/gorm"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

type AddCommentRequest struct {
	Text     string `json:"text" binding:"required"`
	PhotoURL string `json:"photoUrl"`
}

const commentPageSize = 10

// AddComment posts a comment on an activity. Restricted accounts cannot
// comment.
func (cc *CommentController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("activityId")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	dbUser, err := fetchUser(cc.DB, user.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	if dbUser.AccountStatus != models.AccountStatusActive {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Account is not permitted to comment"})
		return
	}

	var activity models.Activity
	if err := cc.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Activity not found"})
		return
	}

	comment := models.Comment{
		ID:         uuid.New().String(),
		UserID:     user.UserID,
		ActivityID: activityID,
		Text:       req.Text,
		PhotoURL:   req.PhotoURL,
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Comment added",
		"commentID": comment.ID,
	})
}

// GetActivityComments returns a page of comments on an activity, newest
// first, with the commenter's username.
func (cc *CommentController) GetActivityComments(c *gin.Context) {
	activityID := c.Param("activityId")
	page := pageParam(c)
	offset := (page - 1) * commentPageSize

	var comments []struct {
		ID        string `json:"id"`
		Text      string `json:"text"`
		PhotoURL  string `json:"photoUrl"`
		Username  string `json:"username"`
		UserID    string `json:"userId"`
		CreatedAt string `json:"createdAt"`
	}

	result := cc.DB.Model(&models.Comment{}).
		Select("comments.id, comments.text, comments.photo_url, comments.user_id, comments.created_at, users.username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.activity_id = ?", activityID).
		Order("comments.created_at DESC").
		Offset(offset).
		Limit(commentPageSize).
		Find(&comments)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comments": comments, "page": page})
}

// DeleteComment removes a comment. Only the author or an admin may do it.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	user := utils.GetUser(c)
	commentID := c.Param("commentId")

	var comment models.Comment
	if err := cc.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Comment not found"})
		return
	}

	if comment.UserID != user.UserID {
		dbUser, err := fetchUser(cc.DB, user.UserID)
		if err != nil || !isActiveAdmin(dbUser) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Not permitted to delete this comment"})
			return
		}
	}

	if err := cc.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment deleted"})
}
