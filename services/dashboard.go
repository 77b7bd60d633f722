package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aonore/CRM-TRAMITES/constants"
	"github.com/aonore/CRM-TRAMITES/models"
)

// StatusCount is one chart bucket: how many tasks sit in a status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Dashboard is the view-model behind the main screen: headline stats, the
// tasks-by-status chart, the top-clients ranking and the inactivity alerts.
type Dashboard struct {
	ClientCount     int             `json:"client_count"`
	ActiveTasks     int             `json:"active_tasks"`
	TotalCollected  decimal.Decimal `json:"total_collected"`
	TotalPending    decimal.Decimal `json:"total_pending"`
	TasksByStatus   []StatusCount   `json:"tasks_by_status"`
	TopClients      []ClientRevenue `json:"top_clients"`
	Alerts          []TaskAlert     `json:"alerts"`
	GlobalAlertDays int             `json:"global_alert_days"`
}

// BuildDashboard assembles the dashboard from one load of clients and tasks.
// The global threshold is passed in so it is fetched exactly once per
// request; per-client overrides still win for the alert list.
func BuildDashboard(clients []models.Client, tasks []models.Task, globalAlertDays int, now time.Time) Dashboard {
	totals := Aggregate(tasks, "")

	active := 0
	counts := make(map[string]int, len(constants.TaskStatuses))
	for _, t := range tasks {
		counts[t.Status]++
		if t.Status != constants.TaskStatusPaid {
			active++
		}
	}

	byStatus := make([]StatusCount, 0, len(constants.TaskStatuses))
	for _, s := range constants.TaskStatuses {
		byStatus = append(byStatus, StatusCount{Status: s, Count: counts[s]})
	}

	return Dashboard{
		ClientCount:     len(clients),
		ActiveTasks:     active,
		TotalCollected:  totals.Collected,
		TotalPending:    totals.Pending,
		TasksByStatus:   byStatus,
		TopClients:      RankClients(clients, tasks, DefaultTopClients),
		Alerts:          ComputeAlerts(tasks, ClientThreshold(clients, globalAlertDays), now),
		GlobalAlertDays: globalAlertDays,
	}
}
