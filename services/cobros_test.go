package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aonore/CRM-TRAMITES/constants"
	"github.com/aonore/CRM-TRAMITES/models"
)

func paidTask(id, clientID, paymentDate, amount string) models.Task {
	t := models.Task{
		ID:       id,
		ClientID: clientID,
		Status:   constants.TaskStatusPaid,
		Amount:   decimal.RequireFromString(amount),
	}
	if paymentDate != "" {
		d, err := time.Parse("2006-01-02", paymentDate)
		if err != nil {
			panic(err)
		}
		t.PaymentDate = &d
	}
	return t
}

func datePtr(s string) *time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestFilterPaymentsNoFilterRoundTrips(t *testing.T) {
	paid := []models.Task{
		paidTask("t1", "c1", "2024-01-15", "100"),
		paidTask("t2", "c2", "", "200"),
		paidTask("t3", "c1", "2024-02-01", "300"),
	}

	out := FilterPayments(paid, PaymentFilter{ClientID: AllClients})
	require.Len(t, out, 3)
	for i := range paid {
		assert.Equal(t, paid[i].ID, out[i].ID)
	}
}

func TestFilterPaymentsInclusiveDateRange(t *testing.T) {
	paid := []models.Task{
		paidTask("in", "c1", "2024-01-15", "100"),
		paidTask("low", "c1", "2024-01-01", "100"),
		paidTask("high", "c1", "2024-01-31", "100"),
		paidTask("out", "c1", "2024-02-01", "100"),
	}

	out := FilterPayments(paid, PaymentFilter{
		From: datePtr("2024-01-01"),
		To:   datePtr("2024-01-31"),
	})
	require.Len(t, out, 3)
	assert.Equal(t, "in", out[0].ID)
	assert.Equal(t, "low", out[1].ID)
	assert.Equal(t, "high", out[2].ID)
}

func TestFilterPaymentsOpenEndedBounds(t *testing.T) {
	paid := []models.Task{
		paidTask("t1", "c1", "2024-01-15", "100"),
		paidTask("t2", "c1", "2024-03-15", "100"),
	}

	out := FilterPayments(paid, PaymentFilter{From: datePtr("2024-02-01")})
	require.Len(t, out, 1)
	assert.Equal(t, "t2", out[0].ID)

	out = FilterPayments(paid, PaymentFilter{To: datePtr("2024-02-01")})
	require.Len(t, out, 1)
	assert.Equal(t, "t1", out[0].ID)
}

func TestFilterPaymentsMissingPaymentDate(t *testing.T) {
	paid := []models.Task{paidTask("t1", "c1", "", "100")}

	// No bounds: included. Any bound: period unknown, excluded.
	assert.Len(t, FilterPayments(paid, PaymentFilter{}), 1)
	assert.Empty(t, FilterPayments(paid, PaymentFilter{From: datePtr("2024-01-01")}))
	assert.Empty(t, FilterPayments(paid, PaymentFilter{To: datePtr("2024-12-31")}))
}

func TestFilterPaymentsByClient(t *testing.T) {
	paid := []models.Task{
		paidTask("t1", "c1", "2024-01-15", "100"),
		paidTask("t2", "c2", "2024-01-15", "200"),
	}

	out := FilterPayments(paid, PaymentFilter{ClientID: "c2"})
	require.Len(t, out, 1)
	assert.Equal(t, "t2", out[0].ID)
}

func TestSummarizePayments(t *testing.T) {
	paid := []models.Task{
		paidTask("t1", "c1", "2024-01-15", "100.50"),
		paidTask("t2", "c1", "2024-01-20", "200.00"),
	}

	summary := SummarizePayments(paid)
	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("300.50")))
	assert.True(t, summary.Average.Equal(decimal.RequireFromString("150.25")))
}

func TestSummarizePaymentsEmpty(t *testing.T) {
	summary := SummarizePayments(nil)
	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.Total.IsZero())
	assert.True(t, summary.Average.IsZero())
}
