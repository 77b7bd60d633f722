package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aonore/CRM-TRAMITES/constants"
	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/services"
	"github.com/aonore/CRM-TRAMITES/utils"
)

type TaskController struct {
	DB *gorm.DB
}

var taskSortColumns = map[string]string{
	"title":         "title",
	"status":        "status",
	"amount":        "amount",
	"start_date":    "start_date",
	"payment_date":  "payment_date",
	"last_activity": "last_activity",
	"created_at":    "created_at",
	"updated_at":    "updated_at",
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	var task models.Task

	if err := c.BindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := tc.validateTask(&task); err != nil {
		respondError(c, err)
		return
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTasks lists tasks, optionally narrowed by exact-match filters
// (?status=, ?client_id=) and ordered by ?sort= (leading '-' descends).
func (tc *TaskController) GetTasks(c *gin.Context) {
	var tasks []models.Task

	q := tc.DB
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if order := parseSort(c, taskSortColumns, "-updated_at"); order != "" {
		q = q.Order(order)
	}

	if err := q.Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	id := c.Param("id")

	var task models.Task
	if err := tc.DB.Preload("Activity").First(&task, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) UpdateTask(c *gin.Context) {
	id := c.Param("id")

	var task models.Task
	if err := tc.DB.First(&task, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if err := c.BindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task.ID = id

	if err := tc.validateTask(&task); err != nil {
		respondError(c, err)
		return
	}

	if err := tc.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// ChangeStatus drives the task lifecycle. Transitioning to paid takes an
// optional payment_date (YYYY-MM-DD); today is used when omitted.
func (tc *TaskController) ChangeStatus(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		Status      string `json:"status"`
		PaymentDate string `json:"payment_date"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var paymentDate *time.Time
	if input.PaymentDate != "" {
		d, err := utils.ParseDate(input.PaymentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment_date must be YYYY-MM-DD"})
			return
		}
		paymentDate = &d
	}

	task, err := services.ChangeStatus(tc.DB, id, input.Status, paymentDate, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	// The transition trail goes with the task; orphaned rows would
	// otherwise accumulate forever.
	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Task{}, "id = ?", id)
		if res.Error != nil {
			return &services.IOError{Op: "delete task", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return &services.NotFoundError{Entity: "task", ID: id}
		}
		return tx.Delete(&models.TaskActivity{}, "task_id = ?", id).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func (tc *TaskController) validateTask(task *models.Task) error {
	if task.Title == "" {
		return services.Validationf("title is required")
	}
	if task.ClientID == "" {
		return services.Validationf("client_id is required")
	}
	if task.Amount.IsNegative() {
		return services.Validationf("amount must not be negative")
	}
	if task.Status != "" && !constants.IsValidTaskStatus(task.Status) {
		return services.Validationf("unknown task status %q", task.Status)
	}
	// A paid task without a payment date has no reporting period.
	if task.Status == constants.TaskStatusPaid && task.PaymentDate == nil {
		return services.Validationf("payment_date is required for paid tasks")
	}

	var count int64
	if err := tc.DB.Model(&models.Client{}).Where("id = ?", task.ClientID).Count(&count).Error; err != nil {
		return &services.IOError{Op: "check client", Err: err}
	}
	if count == 0 {
		return &services.NotFoundError{Entity: "client", ID: task.ClientID}
	}
	return nil
}
