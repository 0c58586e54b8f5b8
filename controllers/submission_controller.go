package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/humspot/api-go/mail"
	"github.com/humspot/api-go/models"
	"github.com/humspot/api-go/utils"
	"gorm.io/gorm"
)

type SubmissionController struct {
	DB         *gorm.DB
	Mailer     mail.Mailer
	Activities *ActivityController
}

func NewSubmissionController(db *gorm.DB, mailer mail.Mailer, activities *ActivityController) *SubmissionController {
	return &SubmissionController{
		DB:         db,
		Mailer:     mailer,
		Activities: activities,
	}
}

type CreateSubmissionRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	ActivityType string  `json:"activityType" binding:"required,oneof=event attraction custom"`
	Tags         string  `json:"tags"`      // comma-delimited
	PhotoURLs    string  `json:"photoUrls"` // comma-delimited
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Organizer    string  `json:"organizer"`
	OpenTimes    string  `json:"openTimes"`
	WebsiteURL   string  `json:"websiteUrl"`
}

const submissionPageSize = 10

// CreateSubmission stages an activity for admin review. Guests cannot
// submit; restricted accounts cannot submit.
func (sc *SubmissionController) CreateSubmission(c *gin.Context) {
	user := utils.GetUser(c)

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	dbUser, err := fetchUser(sc.DB, user.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	if dbUser.AccountStatus != models.AccountStatusActive || dbUser.AccountType == models.AccountTypeGuest {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Account is not permitted to submit activities"})
		return
	}

	submission := models.Submission{
		ID:           uuid.New().String(),
		SubmitterID:  dbUser.ID,
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		ActivityType: req.ActivityType,
		Tags:         req.Tags,
		PhotoURLs:    req.PhotoURLs,
		Date:         req.Date,
		Time:         req.Time,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Organizer:    req.Organizer,
		OpenTimes:    req.OpenTimes,
		WebsiteURL:   req.WebsiteURL,
	}

	if err := sc.DB.Create(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create submission"})
		return
	}

	sc.notify(dbUser.Email, func(to string) error {
		return sc.Mailer.SubmissionReceived(to, submission.Name)
	})

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Submission received and awaiting review",
		"submissionID": submission.ID,
	})
}

// ListPending returns a page of submissions awaiting review. Admin only.
func (sc *SubmissionController) ListPending(c *gin.Context) {
	user := utils.GetUser(c)
	page := pageParam(c)
	offset := (page - 1) * submissionPageSize

	admin, err := fetchUser(sc.DB, user.UserID)
	if err != nil || !isActiveAdmin(admin) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin privileges required"})
		return
	}

	var submissions []models.Submission
	result := sc.DB.Order("created_at ASC").
		Offset(offset).
		Limit(submissionPageSize).
		Find(&submissions)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submissions": submissions, "page": page})
}

type ApproveSubmissionRequest struct {
	Message string `json:"message"`
}

// ApproveSubmission converts a pending submission into a published
// activity. The flattened comma-delimited fields are reshaped into the
// same request the create handlers take, the activity and the submission
// delete commit as one transaction, and the notification fires after
// commit so a mail failure can never roll back the approval.
func (sc *SubmissionController) ApproveSubmission(c *gin.Context) {
	user := utils.GetUser(c)
	submissionID := c.Param("submissionId")

	var req ApproveSubmissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	admin, err := fetchUser(sc.DB, user.UserID)
	if err != nil || !isActiveAdmin(admin) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin privileges required"})
		return
	}

	var submission models.Submission
	if err := sc.DB.First(&submission, "id = ?", submissionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Submission not found"})
		return
	}

	// No conversion path exists for custom submissions. Permanent rule.
	if submission.ActivityType == models.ActivityTypeCustom {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Custom submissions cannot be approved"})
		return
	}

	var submitter models.User
	if err := sc.DB.First(&submitter, "id = ?", submission.SubmitterID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Submitter not found"})
		return
	}

	tx := sc.DB.Begin()

	var activityID string
	switch submission.ActivityType {
	case models.ActivityTypeEvent:
		activityID, err = sc.Activities.insertEvent(tx, &CreateEventRequest{
			Name:        submission.Name,
			Description: submission.Description,
			Location:    submission.Location,
			Date:        submission.Date,
			Time:        submission.Time,
			Latitude:    submission.Latitude,
			Longitude:   submission.Longitude,
			Organizer:   submission.Organizer,
			Tags:        splitList(submission.Tags),
			PhotoURLs:   splitList(submission.PhotoURLs),
		})
	case models.ActivityTypeAttraction:
		activityID, err = sc.Activities.insertAttraction(tx, &CreateAttractionRequest{
			Name:        submission.Name,
			Description: submission.Description,
			Location:    submission.Location,
			OpenTimes:   submission.OpenTimes,
			WebsiteURL:  submission.WebsiteURL,
			Tags:        splitList(submission.Tags),
			PhotoURLs:   splitList(submission.PhotoURLs),
		})
	default:
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unsupported submission type"})
		return
	}

	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to publish submission"})
		return
	}

	if err := tx.Delete(&submission).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove submission"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to publish submission"})
		return
	}

	sc.notify(submitter.Email, func(to string) error {
		return sc.Mailer.SubmissionApproved(to, submission.Name, req.Message)
	})

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Submission approved",
		"activityID": activityID,
	})
}

type DenySubmissionRequest struct {
	Reason string `json:"reason"`
}

// DenySubmission discards a pending submission and tells the submitter
// why. Admin only.
func (sc *SubmissionController) DenySubmission(c *gin.Context) {
	user := utils.GetUser(c)
	submissionID := c.Param("submissionId")

	var req DenySubmissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
	}

	admin, err := fetchUser(sc.DB, user.UserID)
	if err != nil || !isActiveAdmin(admin) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin privileges required"})
		return
	}

	var submission models.Submission
	if err := sc.DB.First(&submission, "id = ?", submissionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Submission not found"})
		return
	}

	var submitter models.User
	if err := sc.DB.First(&submitter, "id = ?", submission.SubmitterID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Submitter not found"})
		return
	}

	if err := sc.DB.Delete(&submission).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove submission"})
		return
	}

	sc.notify(submitter.Email, func(to string) error {
		return sc.Mailer.SubmissionDenied(to, submission.Name, req.Reason)
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Submission denied"})
}

// notify dispatches a mail in the background. Failures are logged and
// never affect the already-committed result.
func (sc *SubmissionController) notify(email *string, send func(to string) error) {
	if sc.Mailer == nil || email == nil || strings.TrimSpace(*email) == "" {
		return
	}
	to := *email
	go func() {
		if err := send(to); err != nil {
			log.Printf("failed to send notification to %s: %v", to, err)
		}
	}()
}
