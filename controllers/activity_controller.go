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

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

type CreateEventRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" binding:"required"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
	PhotoURLs   []string `json:"photoUrls"`
}

type CreateAttractionRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" binding:"required"`
	OpenTimes   string   `json:"openTimes"`
	WebsiteURL  string   `json:"websiteUrl"`
	Tags        []string `json:"tags"`
	PhotoURLs   []string `json:"photoUrls"`
}

const activityPageSize = 20

// CreateEvent publishes a new event. Admin or organizer only. The activity
// row, event detail, tags and photos are written as a single transaction.
func (ac *ActivityController) CreateEvent(c *gin.Context) {
	user := utils.GetUser(c)

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	dbUser, err := fetchUser(ac.DB, user.UserID)
	if err != nil || !canPublish(dbUser) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin or organizer privileges required"})
		return
	}

	tx := ac.DB.Begin()

	activityID, err := ac.insertEvent(tx, &req)
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create event"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Event created successfully",
		"activityID": activityID,
	})
}

// CreateAttraction publishes a new attraction. Admin or organizer only.
func (ac *ActivityController) CreateAttraction(c *gin.Context) {
	user := utils.GetUser(c)

	var req CreateAttractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	dbUser, err := fetchUser(ac.DB, user.UserID)
	if err != nil || !canPublish(dbUser) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin or organizer privileges required"})
		return
	}

	tx := ac.DB.Begin()

	activityID, err := ac.insertAttraction(tx, &req)
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create attraction"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create attraction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Attraction created successfully",
		"activityID": activityID,
	})
}

// insertEvent writes the activity, event detail, tag links and photos on
// the caller's transaction. The submission approval path reuses it so an
// approved submission goes through the exact same create contract.
func (ac *ActivityController) insertEvent(tx *gorm.DB, req *CreateEventRequest) (string, error) {
	activity := models.Activity{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		ActivityType: models.ActivityTypeEvent,
	}

	if err := tx.Create(&activity).Error; err != nil {
		return "", err
	}

	event := models.Event{
		ID:         uuid.New().String(),
		ActivityID: activity.ID,
		Date:       req.Date,
		Time:       req.Time,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Organizer:  req.Organizer,
	}

	if err := tx.Create(&event).Error; err != nil {
		return "", err
	}

	if err := ac.attachTagsAndPhotos(tx, activity.ID, req.Tags, req.PhotoURLs); err != nil {
		return "", err
	}

	return activity.ID, nil
}

func (ac *ActivityController) insertAttraction(tx *gorm.DB, req *CreateAttractionRequest) (string, error) {
	activity := models.Activity{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		ActivityType: models.ActivityTypeAttraction,
	}

	if err := tx.Create(&activity).Error; err != nil {
		return "", err
	}

	attraction := models.Attraction{
		ID:         uuid.New().String(),
		ActivityID: activity.ID,
		OpenTimes:  req.OpenTimes,
		WebsiteURL: req.WebsiteURL,
	}

	if err := tx.Create(&attraction).Error; err != nil {
		return "", err
	}

	if err := ac.attachTagsAndPhotos(tx, activity.ID, req.Tags, req.PhotoURLs); err != nil {
		return "", err
	}

	return activity.ID, nil
}

func (ac *ActivityController) attachTagsAndPhotos(tx *gorm.DB, activityID string, tags, photoURLs []string) error {
	for _, name := range tags {
		tag, err := findOrCreateTag(tx, name)
		if err != nil {
			return err
		}
		link := models.ActivityTag{ActivityID: activityID, TagID: tag.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}

	for _, url := range photoURLs {
		photo := models.ActivityPhoto{
			ID:         uuid.New().String(),
			ActivityID: activityID,
			PhotoURL:   url,
		}
		if err := tx.Create(&photo).Error; err != nil {
			return err
		}
	}

	return nil
}

func findOrCreateTag(tx *gorm.DB, name string) (*models.Tag, error) {
	var tag models.Tag
	err := tx.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tag = models.Tag{ID: uuid.New().String(), Name: name}
		if err := tx.Create(&tag).Error; err != nil {
			return nil, err
		}
		return &tag, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func canPublish(user *models.User) bool {
	if user.AccountStatus != models.AccountStatusActive {
		return false
	}
	return user.AccountType == models.AccountTypeAdmin || user.AccountType == models.AccountTypeOrganizer
}

// GetActivity returns one activity with its tags, photos and subtype
// detail.
func (ac *ActivityController) GetActivity(c *gin.Context) {
	activityID := c.Param("activityId")

	var activity models.Activity
	if err := ac.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Activity not found"})
		return
	}

	var tags []string
	ac.DB.Model(&models.ActivityTag{}).
		Select("tags.name").
		Joins("JOIN tags ON tags.id = activity_tags.tag_id").
		Where("activity_tags.activity_id = ?", activityID).
		Scan(&tags)

	var photos []string
	ac.DB.Model(&models.ActivityPhoto{}).
		Select("photo_url").
		Where("activity_id = ?", activityID).
		Scan(&photos)

	response := gin.H{
		"success":      true,
		"id":           activity.ID,
		"name":         activity.Name,
		"description":  activity.Description,
		"location":     activity.Location,
		"activityType": activity.ActivityType,
		"avgRating":    activity.AvgRating,
		"tags":         tags,
		"photoUrls":    photos,
	}

	switch activity.ActivityType {
	case models.ActivityTypeEvent:
		var event models.Event
		if err := ac.DB.Where("activity_id = ?", activityID).First(&event).Error; err == nil {
			response["event"] = event
		}
	case models.ActivityTypeAttraction:
		var attraction models.Attraction
		if err := ac.DB.Where("activity_id = ?", activityID).First(&attraction).Error; err == nil {
			response["attraction"] = attraction
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetEventsPage lists published events, newest first, 20 per page.
func (ac *ActivityController) GetEventsPage(c *gin.Context) {
	page := pageParam(c)
	offset := (page - 1) * activityPageSize

	var events []struct {
		ActivityID  string  `json:"activityId"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Location    string  `json:"location"`
		AvgRating   float64 `json:"avgRating"`
		Date        string  `json:"date"`
		Time        string  `json:"time"`
		Organizer   string  `json:"organizer"`
	}

	result := ac.DB.Model(&models.Activity{}).
		Select("activities.id as activity_id, activities.name, activities.description, activities.location, activities.avg_rating, events.date, events.time, events.organizer").
		Joins("JOIN events ON events.activity_id = activities.id").
		Where("activities.activity_type = ?", models.ActivityTypeEvent).
		Order("activities.created_at DESC").
		Offset(offset).
		Limit(activityPageSize).
		Find(&events)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "events": events, "page": page})
}

// GetAttractionsPage lists published attractions, newest first, 20 per page.
func (ac *ActivityController) GetAttractionsPage(c *gin.Context) {
	page := pageParam(c)
	offset := (page - 1) * activityPageSize

	var attractions []struct {
		ActivityID  string  `json:"activityId"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Location    string  `json:"location"`
		AvgRating   float64 `json:"avgRating"`
		OpenTimes   string  `json:"openTimes"`
		WebsiteURL  string  `json:"websiteUrl"`
	}

	result := ac.DB.Model(&models.Activity{}).
		Select("activities.id as activity_id, activities.name, activities.description, activities.location, activities.avg_rating, attractions.open_times, attractions.website_url").
		Joins("JOIN attractions ON attractions.activity_id = activities.id").
		Where("activities.activity_type = ?", models.ActivityTypeAttraction).
		Order("activities.created_at DESC").
		Offset(offset).
		Limit(activityPageSize).
		Find(&attractions)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching attractions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "attractions": attractions, "page": page})
}

// DeleteActivity removes an activity and everything hanging off it in one
// transaction. Admin only.
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	user := utils.GetUser(c)
	activityID := c.Param("activityId")

	dbUser, err := fetchUser(ac.DB, user.UserID)
	if err != nil || !isActiveAdmin(dbUser) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin privileges required"})
		return
	}

	var activity models.Activity
	if err := ac.DB.First(&activity, "id = ?", activityID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Activity not found"})
		return
	}

	tx := ac.DB.Begin()

	dependents := []interface{}{
		&models.Event{},
		&models.Attraction{},
		&models.ActivityTag{},
		&models.ActivityPhoto{},
		&models.Favorite{},
		&models.Visited{},
		&models.RSVP{},
		&models.Rating{},
		&models.Comment{},
	}

	for _, model := range dependents {
		if err := tx.Where("activity_id = ?", activityID).Delete(model).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete activity"})
			return
		}
	}

	if err := tx.Delete(&activity).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete activity"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Activity deleted"})
}
