package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/services"
)

type ClientController struct {
	DB *gorm.DB
}

var clientSortColumns = map[string]string{
	"full_name":  "full_name",
	"company":    "company",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (cc *ClientController) GetClients(c *gin.Context) {
	var clients []models.Client

	q := cc.DB
	if order := parseSort(c, clientSortColumns, "full_name"); order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (cc *ClientController) CreateClient(c *gin.Context) {
	var client models.Client

	if err := c.BindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateClient(&client); err != nil {
		respondError(c, err)
		return
	}

	if err := cc.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) GetClient(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := cc.DB.First(&client, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) UpdateClient(c *gin.Context) {
	id := c.Param("id")

	var client models.Client
	if err := cc.DB.First(&client, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	if err := c.BindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = id

	if err := validateClient(&client); err != nil {
		respondError(c, err)
		return
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, client)
}

func validateClient(client *models.Client) error {
	if client.FullName == "" {
		return services.Validationf("full_name is required")
	}
	if client.Email == "" {
		return services.Validationf("email is required")
	}
	if client.AlertDays != 0 && (client.AlertDays < 1 || client.AlertDays > 365) {
		return services.Validationf("alert_days must be between 1 and 365")
	}
	return nil
}
