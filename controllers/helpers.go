package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/services"
)

func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var nfErr *services.NotFoundError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseSort turns a ?sort= value into an ORDER BY clause. A leading '-'
// means descending. Fields are whitelisted per entity to keep user input
// out of the SQL.
func parseSort(c *gin.Context, allowed map[string]string, def string) string {
	spec := c.Query("sort")
	if spec == "" {
		spec = def
	}

	desc := strings.HasPrefix(spec, "-")
	field := strings.TrimPrefix(spec, "-")

	column, ok := allowed[field]
	if !ok {
		return ""
	}
	if desc {
		return column + " DESC"
	}
	return column
}

func currentUser(c *gin.Context, db *gorm.DB) (*models.User, error) {
	id, exists := c.Get("user_id")
	if !exists {
		return nil, errors.New("no authenticated user")
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
