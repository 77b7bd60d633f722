package models

import "time"

// User is the operator account. GlobalAlertDays is the dashboard-wide
// inactivity threshold configured on the settings page.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `json:"name"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Password        string    `json:"password,omitempty"`
	GlobalAlertDays int       `gorm:"default:7" json:"global_alert_days"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
