package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aonore/CRM-TRAMITES/models"
	"github.com/aonore/CRM-TRAMITES/utils"
)

// AllClients is the sentinel client filter meaning "no client filter".
const AllClients = "all"

// PaymentFilter narrows a payment report. Nil date bounds mean unbounded;
// both bounds are inclusive. ClientID may be empty or AllClients to match
// every client.
type PaymentFilter struct {
	From     *time.Time
	To       *time.Time
	ClientID string
}

// FilterPayments filters a collection of already-paid tasks, preserving
// input order. A task without a payment date passes only when no date bound
// is set; with any bound in place its period is unknown and it is excluded.
func FilterPayments(paid []models.Task, f PaymentFilter) []models.Task {
	out := []models.Task{}
	for _, t := range paid {
		if f.ClientID != "" && f.ClientID != AllClients && t.ClientID != f.ClientID {
			continue
		}

		if f.From != nil || f.To != nil {
			if t.PaymentDate == nil {
				continue
			}
			d := utils.TruncateToDay(*t.PaymentDate)
			if f.From != nil && d.Before(utils.TruncateToDay(*f.From)) {
				continue
			}
			if f.To != nil && d.After(utils.TruncateToDay(*f.To)) {
				continue
			}
		}

		out = append(out, t)
	}
	return out
}

// PaymentSummary is the header block of the payments report.
type PaymentSummary struct {
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
}

func SummarizePayments(paid []models.Task) PaymentSummary {
	total := decimal.Zero
	for _, t := range paid {
		total = total.Add(t.Amount)
	}
	avg := decimal.Zero
	if len(paid) > 0 {
		avg = total.DivRound(decimal.NewFromInt(int64(len(paid))), 2)
	}
	return PaymentSummary{Count: len(paid), Total: total, Average: avg}
}
