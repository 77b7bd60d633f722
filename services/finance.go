package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/aonore/CRM-TRAMITES/constants"
	"github.com/aonore/CRM-TRAMITES/models"
)

// DefaultTopClients is how many clients RankClients returns when the caller
// passes a non-positive limit.
const DefaultTopClients = 5

// Totals holds the two revenue figures the dashboard reports: collected
// (paid tasks) and pending (finished but unpaid tasks). Work that is merely
// started or in progress is not billable yet and counts toward neither.
type Totals struct {
	Collected decimal.Decimal `json:"collected"`
	Pending   decimal.Decimal `json:"pending"`
}

func (t Totals) Add(o Totals) Totals {
	return Totals{
		Collected: t.Collected.Add(o.Collected),
		Pending:   t.Pending.Add(o.Pending),
	}
}

// Aggregate sums task amounts into collected/pending totals. A non-empty
// clientID scopes the sums to that client's tasks.
func Aggregate(tasks []models.Task, clientID string) Totals {
	totals := Totals{Collected: decimal.Zero, Pending: decimal.Zero}
	for _, t := range tasks {
		if clientID != "" && t.ClientID != clientID {
			continue
		}
		switch t.Status {
		case constants.TaskStatusPaid:
			totals.Collected = totals.Collected.Add(t.Amount)
		case constants.TaskStatusFinished:
			totals.Pending = totals.Pending.Add(t.Amount)
		}
	}
	return totals
}

// ClientRevenue is one row of the top-clients ranking.
type ClientRevenue struct {
	Client    models.Client   `json:"client"`
	Collected decimal.Decimal `json:"collected"`
	Pending   decimal.Decimal `json:"pending"`
	Total     decimal.Decimal `json:"total"`
}

// RankClients orders clients by total value generated (collected plus
// pending), descending, and returns the top limit rows. The sort is stable:
// clients with equal totals keep their input order.
func RankClients(clients []models.Client, tasks []models.Task, limit int) []ClientRevenue {
	if limit <= 0 {
		limit = DefaultTopClients
	}

	ranked := make([]ClientRevenue, 0, len(clients))
	for _, c := range clients {
		totals := Aggregate(tasks, c.ID)
		ranked = append(ranked, ClientRevenue{
			Client:    c,
			Collected: totals.Collected,
			Pending:   totals.Pending,
			Total:     totals.Collected.Add(totals.Pending),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
