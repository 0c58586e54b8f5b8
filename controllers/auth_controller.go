package controllers

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/humspot/api-go/config"
	"github.com/humspot/api-go/models"
	"github.com/humspot/api-go/utils"
	"gorm.io/gorm"
)

type AuthController struct {
	DB           *gorm.DB
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

// GoogleLogin federates identity to Google. On the first successful login
// a User row is created with accountType "user" and accountStatus "active";
// afterwards the same row is reused.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var input struct {
		IDToken     string `json:"id_token"`
		AccessToken string `json:"access_token"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var userInfo *config.GoogleUserInfo
	var err error

	if input.IDToken != "" {
		userInfo, err = ac.GoogleConfig.VerifyIDToken(input.IDToken)
	} else if input.AccessToken != "" {
		userInfo, err = ac.GoogleConfig.GetUserInfo(input.AccessToken)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Either id_token or access_token is required"})
		return
	}

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid Google token"})
		return
	}

	var user models.User
	userExists := ac.DB.Where("google_id = ? OR email = ?", userInfo.ID, userInfo.Email).First(&user).Error == nil

	if !userExists {
		username := usernameFromEmail(ac.DB, userInfo.Email)

		user = models.User{
			ID:            uuid.New().String(),
			Username:      username,
			Email:         &userInfo.Email,
			ProfilePicURL: userInfo.Picture,
			AccountType:   models.AccountTypeUser,
			AccountStatus: models.AccountStatusActive,
			AuthProvider:  "google",
			GoogleID:      &userInfo.ID,
		}

		if err := ac.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user"})
			return
		}
	}

	token, err := generateAccessToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Logged in successfully",
		"token_type":   "Bearer",
		"access_token": token,
		"user": gin.H{
			"id":            user.ID,
			"username":      user.Username,
			"email":         user.Email,
			"accountType":   user.AccountType,
			"accountStatus": user.AccountStatus,
			"profilePic":    user.ProfilePicURL,
		},
	})
}

// GuestLogin creates a throwaway guest account. Guests can browse and
// toggle but cannot submit activities.
func (ac *AuthController) GuestLogin(c *gin.Context) {
	id := uuid.New().String()
	user := models.User{
		ID:            id,
		Username:      "guest_" + id[:8],
		AccountType:   models.AccountTypeGuest,
		AccountStatus: models.AccountStatusActive,
		AuthProvider:  "guest",
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create guest user"})
		return
	}

	token, err := generateAccessToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Guest session created",
		"token_type":   "Bearer",
		"access_token": token,
		"user": gin.H{
			"id":          user.ID,
			"username":    user.Username,
			"accountType": user.AccountType,
		},
	})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found in context"})
		return
	}

	var dbUser models.User
	if err := ac.DB.First(&dbUser, "id = ?", user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":            dbUser.ID,
			"username":      dbUser.Username,
			"email":         dbUser.Email,
			"accountType":   dbUser.AccountType,
			"accountStatus": dbUser.AccountStatus,
			"profilePic":    dbUser.ProfilePicURL,
			"createdAt":     dbUser.CreatedAt,
		},
	})
}

func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not found in context"})
		return
	}

	var input struct {
		Username      string `json:"username"`
		ProfilePicURL string `json:"profilePicUrl"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var dbUser models.User
	if err := ac.DB.First(&dbUser, "id = ?", user.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if input.Username != "" {
		updates["username"] = input.Username
	}
	if input.ProfilePicURL != "" {
		updates["profile_pic_url"] = input.ProfilePicURL
	}

	if len(updates) > 0 {
		if err := ac.DB.Model(&dbUser).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user": gin.H{
			"id":         dbUser.ID,
			"username":   dbUser.Username,
			"profilePic": dbUser.ProfilePicURL,
		},
	})
}

func generateAccessToken(user *models.User) (string, error) {
	tokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":      user.ID,
		"account_type": user.AccountType,
		"exp":          time.Now().Add(time.Hour * 24 * 7).Unix(),
	})
	return tokenBase.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// usernameFromEmail derives a unique username from the email's local part.
func usernameFromEmail(db *gorm.DB, email string) string {
	base := email
	if at := strings.Index(email, "@"); at > 0 {
		base = email[:at]
	}

	username := base
	counter := 1
	for {
		var existing models.User
		if db.Where("username = ?", username).First(&existing).Error != nil {
			break
		}
		username = fmt.Sprintf("%s%d", base, counter)
		counter++
	}
	return username
}
