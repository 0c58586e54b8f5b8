package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/models"
	"github.com/humspot/api-go/utils"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// UpdateAccountStatus sets a user's accountStatus. Admin-gated.
func (uc *UserController) UpdateAccountStatus(c *gin.Context) {
	caller := utils.GetUser(c)
	targetID := c.Param("userId")

	var input struct {
		AccountStatus string `json:"accountStatus" binding:"required,oneof=active restricted"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	admin, err := fetchUser(uc.DB, caller.UserID)
	if err != nil || !isActiveAdmin(admin) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin privileges required"})
		return
	}

	var target models.User
	if err := uc.DB.First(&target, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if err := uc.DB.Model(&target).Update("account_status", input.AccountStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update account status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account status updated",
		"user":    gin.H{"id": target.ID, "accountStatus": input.AccountStatus},
	})
}

// UpdateAccountType sets a user's accountType. Admin-gated.
func (uc *UserController) UpdateAccountType(c *gin.Context) {
	caller := utils.GetUser(c)
	targetID := c.Param("userId")

	var input struct {
		AccountType string `json:"accountType" binding:"required,oneof=user admin organizer guest"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	admin, err := fetchUser(uc.DB, caller.UserID)
	if err != nil || !isActiveAdmin(admin) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Admin privileges required"})
		return
	}

	var target models.User
	if err := uc.DB.First(&target, "id = ?", targetID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	if err := uc.DB.Model(&target).Update("account_type", input.AccountType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update account type"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account type updated",
		"user":    gin.H{"id": target.ID, "accountType": input.AccountType},
	})
}
