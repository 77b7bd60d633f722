package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/aonore/CRM-TRAMITES/constants"
)

type Task struct {
	ID             string          `gorm:"primaryKey;size:36" json:"id"`
	ClientID       string          `gorm:"size:36;index" json:"client_id"`
	Title          string          `gorm:"not null" json:"title"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Status         string          `gorm:"size:20;index" json:"status"`
	StartDate      *time.Time      `json:"start_date"`
	CompletionDate *time.Time      `json:"completion_date"`
	// PaymentDate is required once Status is paid and is authoritative
	// for reporting by payment period.
	PaymentDate  *time.Time     `json:"payment_date"`
	LastActivity time.Time      `json:"last_activity"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Activity     []TaskActivity `json:"activity,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = constants.TaskStatusStarted
	}
	if t.LastActivity.IsZero() {
		t.LastActivity = time.Now()
	}
	return nil
}
