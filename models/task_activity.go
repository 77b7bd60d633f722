package models

import "time"

// TaskActivity records one status transition for a task. Rows are written by
// the lifecycle service and only ever appended.
type TaskActivity struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TaskID     string    `gorm:"size:36;index" json:"task_id"`
	FromStatus string    `gorm:"size:20" json:"from_status"`
	ToStatus   string    `gorm:"size:20" json:"to_status"`
	CreatedAt  time.Time `json:"created_at"`
}
