package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"strconv"
	"time"
)

var (
	purchaseOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickto_purchase_outcomes_total",
			Help: "Purchases by terminal state and error kind",
		},
		[]string{"state", "kind"},
	)

	purchaseStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tickto_purchase_stage_duration_seconds",
			Help:    "Time spent in each purchase stage",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"stage"},
	)

	ledgerSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickto_ledger_submissions_total",
			Help: "Ledger transaction submissions by result",
		},
		[]string{"result"},
	)

	confirmationResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickto_confirmation_results_total",
			Help: "Confirmation watcher terminal results",
		},
		[]string{"result"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tickto_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)

	ticketsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickto_tickets_issued_total",
			Help: "Ticket rows committed to the store",
		},
	)
)

func RecordPurchaseOutcome(state, kind string) {
	purchaseOutcomes.WithLabelValues(state, kind).Inc()
}

func RecordStageDuration(stage string, started time.Time) {
	purchaseStageDuration.WithLabelValues(stage).Observe(time.Since(started).Seconds())
}

func RecordSubmission(result string) {
	ledgerSubmissions.WithLabelValues(result).Inc()
}

func RecordConfirmation(result string) {
	confirmationResults.WithLabelValues(result).Inc()
}

func RecordTicketsIssued(count int) {
	ticketsIssued.Add(float64(count))
}

func RecordHttpRequest(route string, status int, started time.Time) {
	httpRequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(time.Since(started).Seconds())
}
