package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/humspot/api-go/models"
	"gorm.io/gorm"
)

// fetchUser loads the caller's User row so handlers can gate on the
// database's view of accountType/accountStatus rather than token claims.
func fetchUser(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func isActiveAdmin(user *models.User) bool {
	return user.AccountStatus == models.AccountStatusActive && user.AccountType == models.AccountTypeAdmin
}

// pageParam parses a /:page path segment, defaulting to the first page.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// splitList splits a comma-delimited submission field, dropping empties.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// validISODate accepts "2006-01-02" or a full RFC 3339 timestamp.
func validISODate(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	return false
}
