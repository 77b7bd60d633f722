package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	DB *gorm.DB
}

// GetSettings returns the authenticated user's profile, including the
// global inactivity-alert threshold shown on the settings page.
func (sc *SettingsController) GetSettings(c *gin.Context) {
	user, err := currentUser(c, sc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// UpdateSettings persists a new global alert threshold for the
// authenticated user. The threshold must sit between 1 and 365 days.
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	user, err := currentUser(c, sc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var input struct {
		GlobalAlertDays int `json:"global_alert_days"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.GlobalAlertDays < 1 || input.GlobalAlertDays > 365 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "global_alert_days must be between 1 and 365"})
		return
	}

	user.GlobalAlertDays = input.GlobalAlertDays
	if err := sc.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}
