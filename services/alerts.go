package services

import (
	"time"

	"github.com/aonore/CRM-TRAMITES/constants"
	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/utils"
)

// TaskAlert is a task flagged for inactivity, annotated with its age in
// whole calendar days and the threshold that flagged it.
type TaskAlert struct {
	Task          models.Task `json:"task"`
	StaleDays     int         `json:"stale_days"`
	ThresholdDays int         `json:"threshold_days"`
}

// ThresholdResolver returns the inactivity threshold in days that applies to
// a given task.
type ThresholdResolver func(t models.Task) int

// FixedThreshold applies the same threshold to every task.
func FixedThreshold(days int) ThresholdResolver {
	return func(models.Task) int { return days }
}

// ClientThreshold applies a client's own alert_days when set, falling back
// to the global threshold for clients without an override.
func ClientThreshold(clients []models.Client, globalDays int) ThresholdResolver {
	byID := make(map[string]int, len(clients))
	for _, c := range clients {
		if c.AlertDays > 0 {
			byID[c.ID] = c.AlertDays
		}
	}
	return func(t models.Task) int {
		if d, ok := byID[t.ClientID]; ok {
			return d
		}
		return globalDays
	}
}

// ComputeAlerts returns the tasks whose last activity is at least the
// resolved threshold of calendar days before now, preserving input order.
//
// Paid tasks never alert: collected work is concluded and needs no
// follow-up. A task with no LastActivity falls back to UpdatedAt; when both
// are missing it is excluded rather than alerted with an undefined age.
func ComputeAlerts(tasks []models.Task, resolve ThresholdResolver, now time.Time) []TaskAlert {
	alerts := []TaskAlert{}
	for _, t := range tasks {
		if t.Status == constants.TaskStatusPaid {
			continue
		}

		last := t.LastActivity
		if last.IsZero() {
			last = t.UpdatedAt
		}
		if last.IsZero() {
			continue
		}

		threshold := resolve(t)
		stale := utils.DaysBetween(last, now)
		if stale >= threshold {
			alerts = append(alerts, TaskAlert{
				Task:          t,
				StaleDays:     stale,
				ThresholdDays: threshold,
			})
		}
	}
	return alerts
}
