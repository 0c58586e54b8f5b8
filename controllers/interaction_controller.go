package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/humspot/api-go/models"
	"github.com/humspot/api-go/utils"
	"gorm.io/gorm"
)

type InteractionController struct {
	DB *gorm.DB
}

func NewInteractionController(db *gorm.DB) *InteractionController {
	return &InteractionController{DB: db}
}

type datedToggleRequest struct {
	Date string `json:"date" binding:"required"`
}

// ToggleFavorite flips favorite membership for (caller, activity). The
// existence check and the mutation run in one transaction; the composite
// unique index on (user_id, activity_id) closes the remaining race window.
func (ic *InteractionController) ToggleFavorite(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("activityId")

	var activity models.Activity
	if err := ic.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Activity not found"})
		return
	}

	tx := ic.DB.Begin()

	var existing models.Favorite
	err := tx.Where("user_id = ? AND activity_id = ?", user.UserID, activityID).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		favorite := models.Favorite{
			ID:         uuid.New().String(),
			UserID:     user.UserID,
			ActivityID: activityID,
		}

		if err := tx.Create(&favorite).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to favorite activity"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to favorite activity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "removed": false, "favoriteID": favorite.ID})
		return
	}

	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to look up favorite"})
		return
	}

	if err := tx.Delete(&existing).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to unfavorite activity"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to unfavorite activity"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": true})
}

// ToggleVisited flips visited membership. Requires an ISO-8601 date in the
// body; malformed input is rejected before any transaction opens.
func (ic *InteractionController) ToggleVisited(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("activityId")

	var req datedToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if !validISODate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date must be an ISO-8601 date"})
		return
	}

	var activity models.Activity
	if err := ic.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Activity not found"})
		return
	}

	tx := ic.DB.Begin()

	var existing models.Visited
	err := tx.Where("user_id = ? AND activity_id = ?", user.UserID, activityID).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		visited := models.Visited{
			ID:         uuid.New().String(),
			UserID:     user.UserID,
			ActivityID: activityID,
			VisitDate:  req.Date,
		}

		if err := tx.Create(&visited).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to mark activity visited"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to mark activity visited"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "removed": false, "visitedID": visited.ID})
		return
	}

	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to look up visit"})
		return
	}

	if err := tx.Delete(&existing).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to unmark activity visited"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to unmark activity visited"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": true})
}

// ToggleRSVP flips RSVP membership, same contract as ToggleVisited.
func (ic *InteractionController) ToggleRSVP(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("activityId")

	var req datedToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if !validISODate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date must be an ISO-8601 date"})
		return
	}

	var activity models.Activity
	if err := ic.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Activity not found"})
		return
	}

	tx := ic.DB.Begin()

	var existing models.RSVP
	err := tx.Where("user_id = ? AND activity_id = ?", user.UserID, activityID).First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		rsvp := models.RSVP{
			ID:         uuid.New().String(),
			UserID:     user.UserID,
			ActivityID: activityID,
			RSVPDate:   req.Date,
		}

		if err := tx.Create(&rsvp).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to RSVP"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to RSVP"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "removed": false, "rsvpID": rsvp.ID})
		return
	}

	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to look up RSVP"})
		return
	}

	if err := tx.Delete(&existing).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove RSVP"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove RSVP"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "removed": true})
}

// GetInteractionStatus reports the caller's favorite/visited/RSVP state
// for one activity. Each field reads its own table.
func (ic *InteractionController) GetInteractionStatus(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("activityId")

	var favoriteCount, visitedCount, rsvpCount int64
	if err := ic.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND activity_id = ?", user.UserID, activityID).
		Count(&favoriteCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to look up interactions"})
		return
	}
	if err := ic.DB.Model(&models.Visited{}).
		Where("user_id = ? AND activity_id = ?", user.UserID, activityID).
		Count(&visitedCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to look up interactions"})
		return
	}
	if err := ic.DB.Model(&models.RSVP{}).
		Where("user_id = ? AND activity_id = ?", user.UserID, activityID).
		Count(&rsvpCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to look up interactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"favorited": favoriteCount > 0,
		"visited":   visitedCount > 0,
		"rsvp":      rsvpCount > 0,
	})
}

const interactionPageSize = 10

type interactionRow struct {
	ActivityID   string `json:"activityId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	ActivityType string `json:"activityType"`
}

// GetMyFavorites returns a page of the caller's favorited activities.
func (ic *InteractionController) GetMyFavorites(c *gin.Context) {
	user := utils.GetUser(c)
	page := pageParam(c)
	offset := (page - 1) * interactionPageSize

	var rows []interactionRow
	result := ic.DB.Model(&models.Favorite{}).
		Select("activities.id as activity_id, activities.name, activities.description, activities.location, activities.activity_type").
		Joins("JOIN activities ON activities.id = favorites.activity_id").
		Where("favorites.user_id = ?", user.UserID).
		Order("favorites.created_at DESC").
		Offset(offset).
		Limit(interactionPageSize).
		Find(&rows)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": rows, "page": page})
}

// GetMyVisited returns a page of the caller's visited activities.
func (ic *InteractionController) GetMyVisited(c *gin.Context) {
	user := utils.GetUser(c)
	page := pageParam(c)
	offset := (page - 1) * interactionPageSize

	var rows []struct {
		interactionRow
		VisitDate string `json:"visitDate"`
	}
	result := ic.DB.Model(&models.Visited{}).
		Select("activities.id as activity_id, activities.name, activities.description, activities.location, activities.activity_type, visiteds.visit_date").
		Joins("JOIN activities ON activities.id = visiteds.activity_id").
		Where("visiteds.user_id = ?", user.UserID).
		Order("visiteds.created_at DESC").
		Offset(offset).
		Limit(interactionPageSize).
		Find(&rows)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching visited activities"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "visited": rows, "page": page})
}

// GetMyRSVPs returns a page of the caller's RSVPed activities.
func (ic *InteractionController) GetMyRSVPs(c *gin.Context) {
	user := utils.GetUser(c)
	page := pageParam(c)
	offset := (page - 1) * interactionPageSize

	var rows []struct {
		interactionRow
		RSVPDate string `json:"rsvpDate"`
	}
	result := ic.DB.Model(&models.RSVP{}).
		Select("activities.id as activity_id, activities.name, activities.description, activities.location, activities.activity_type, rsvps.rsvp_date").
		Joins("JOIN activities ON activities.id = rsvps.activity_id").
		Where("rsvps.user_id = ?", user.UserID).
		Order("rsvps.created_at DESC").
		Offset(offset).
		Limit(interactionPageSize).
		Find(&rows)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching RSVPs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rsvps": rows, "page": page})
}
