package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aonore/CRM-TRAMITES/constants"
	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/services"
	"github.com/aonore/CRM-TRAMITES/utils"
)

type CobroController struct {
	DB *gorm.DB
}

// GetCobros is the payments report: paid tasks newest-payment first,
// narrowed by ?from=, ?to= (inclusive, YYYY-MM-DD) and ?client_id=
// ("all" or empty matches every client), with a summary block.
func (cc *CobroController) GetCobros(c *gin.Context) {
	filter := services.PaymentFilter{ClientID: c.Query("client_id")}

	if v := c.Query("from"); v != "" {
		d, err := utils.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		filter.From = &d
	}
	if v := c.Query("to"); v != "" {
		d, err := utils.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		filter.To = &d
	}

	var paid []models.Task
	if err := cc.DB.
		Where("status = ?", constants.TaskStatusPaid).
		Order("payment_date DESC").
		Find(&paid).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cobros := services.FilterPayments(paid, filter)

	c.JSON(http.StatusOK, gin.H{
		"cobros":  cobros,
		"summary": services.SummarizePayments(cobros),
	})
}
