package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aonore/CRM-TRAMITES/constants"
	"github.com/aonore/CRM-TRAMITES/models"
)

func dashboardFixture() ([]models.Client, []models.Task, time.Time) {
	t0 := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	lastTouch := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	payDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	doneDate := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	client := models.Client{
		ID:        "11111111-1111-1111-1111-111111111111",
		FullName:  "Ana Torres",
		Company:   "Torres y Asociados",
		Email:     "ana@torres.example",
		AlertDays: 10,
		CreatedAt: t0,
		UpdatedAt: t0,
	}

	finished := models.Task{
		ID:             "22222222-2222-2222-2222-222222222222",
		ClientID:       client.ID,
		Title:          "Permiso de obra",
		Description:    "Expediente municipal",
		Amount:         decimal.NewFromInt(500),
		Status:         constants.TaskStatusFinished,
		CompletionDate: &doneDate,
		LastActivity:   lastTouch,
		CreatedAt:      t0,
		UpdatedAt:      lastTouch,
	}
	paid := models.Task{
		ID:           "33333333-3333-3333-3333-333333333333",
		ClientID:     client.ID,
		Title:        "Licencia de actividad",
		Amount:       decimal.RequireFromString("300.50"),
		Status:       constants.TaskStatusPaid,
		PaymentDate:  &payDate,
		LastActivity: payDate,
		CreatedAt:    t0,
		UpdatedAt:    payDate,
	}

	return []models.Client{client}, []models.Task{finished, paid}, now
}

func TestBuildDashboard(t *testing.T) {
	clients, tasks, now := dashboardFixture()

	dash := BuildDashboard(clients, tasks, 7, now)

	assert.Equal(t, 1, dash.ClientCount)
	assert.Equal(t, 1, dash.ActiveTasks)
	assert.True(t, dash.TotalCollected.Equal(decimal.RequireFromString("300.50")))
	assert.True(t, dash.TotalPending.Equal(decimal.NewFromInt(500)))

	require.Len(t, dash.TasksByStatus, 4)
	assert.Equal(t, StatusCount{Status: constants.TaskStatusFinished, Count: 1}, dash.TasksByStatus[2])
	assert.Equal(t, StatusCount{Status: constants.TaskStatusPaid, Count: 1}, dash.TasksByStatus[3])

	require.Len(t, dash.TopClients, 1)
	assert.True(t, dash.TopClients[0].Total.Equal(decimal.RequireFromString("800.50")))

	// The finished task is 14 days stale against the client's 10-day
	// override; the paid one never alerts.
	require.Len(t, dash.Alerts, 1)
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", dash.Alerts[0].Task.ID)
	assert.Equal(t, 14, dash.Alerts[0].StaleDays)
	assert.Equal(t, 10, dash.Alerts[0].ThresholdDays)
}

func TestBuildDashboardGolden(t *testing.T) {
	clients, tasks, now := dashboardFixture()

	dash := BuildDashboard(clients, tasks, 7, now)

	data, err := json.MarshalIndent(dash, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "dashboard", data)
}
