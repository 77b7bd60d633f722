package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/services"
)

type DashboardController struct {
	DB *gorm.DB
}

// GetDashboard loads clients and tasks once, resolves the global alert
// threshold from the authenticated user, and returns the assembled
// view-model. Either read failing fails the whole request.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	user, err := currentUser(c, dc.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var clients []models.Client
	if err := dc.DB.Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var tasks []models.Task
	if err := dc.DB.Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	globalDays := user.GlobalAlertDays
	if globalDays <= 0 {
		globalDays = 7
	}

	c.JSON(http.StatusOK, services.BuildDashboard(clients, tasks, globalDays, time.Now()))
}
