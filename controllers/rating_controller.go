package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/humspot/api-go/models"
	"github.com/humspot/api-go/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingController struct {
	DB *gorm.DB
}

func NewRatingController(db *gorm.DB) *RatingController {
	return &RatingController{DB: db}
}

type SubmitRatingRequest struct {
	Rating float64 `json:"rating" binding:"required,gte=1,lte=5"`
}

// SubmitRating upserts the caller's rating for an activity and rewrites
// the activity's average from the full rating set, all in one transaction.
// The full recompute (instead of an incremental average) keeps the stored
// mean exact no matter how writes interleave.
func (rc *RatingController) SubmitRating(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("activityId")

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "rating must be a number between 1 and 5"})
		return
	}

	dbUser, err := fetchUser(rc.DB, user.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	if dbUser.AccountStatus != models.AccountStatusActive {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Account is not permitted to rate activities"})
		return
	}

	var activity models.Activity
	if err := rc.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Activity not found"})
		return
	}

	now := time.Now()
	tx := rc.DB.Begin()

	rating := models.Rating{
		ID:         uuid.New().String(),
		UserID:     user.UserID,
		ActivityID: activityID,
		Rating:     req.Rating,
		DateRated:  now,
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "activity_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     req.Rating,
			"date_rated": now,
		}),
	}).Create(&rating).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save rating"})
		return
	}

	var avg float64
	if err := tx.Model(&models.Rating{}).
		Where("activity_id = ?", activityID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to recompute average rating"})
		return
	}

	if err := tx.Model(&models.Activity{}).
		Where("id = ?", activityID).
		Update("avg_rating", avg).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update average rating"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Rating saved",
		"avgRating": avg,
	})
}

// GetMyRating returns the caller's own rating for an activity.
func (rc *RatingController) GetMyRating(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("activityId")

	var rating models.Rating
	if err := rc.DB.Where("user_id = ? AND activity_id = ?", user.UserID, activityID).First(&rating).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No rating found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"rating":    rating.Rating,
		"dateRated": rating.DateRated,
	})
}
