package metrics

import (
	"time"

	"github.com/goodnatureofminers/flightguard/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	purchaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightguard",
		Subsystem: "policy_service",
		Name:      "purchase_total",
		Help:      "Count of policy purchases by outcome.",
	}, []string{"network", "tier", "outcome"})

	purchaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flightguard",
		Subsystem: "policy_service",
		Name:      "purchase_duration_seconds",
		Help:      "Duration from submission to confirmation of a purchase.",
		Buckets:   []float64{1, 2.5, 5, 10, 15, 30, 60, 120, 300},
	}, []string{"network", "outcome"})

	listTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightguard",
		Subsystem: "policy_service",
		Name:      "list_total",
		Help:      "Count of holder policy listings.",
	}, []string{"network", "status"})

	listDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flightguard",
		Subsystem: "policy_service",
		Name:      "list_duration_seconds",
		Help:      "Duration of a holder policy listing including every record read.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	listSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "flightguard",
		Subsystem: "policy_service",
		Name:      "list_size",
		Help:      "Number of policy identifiers per holder listing.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	}, []string{"network"})

	recordReadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "flightguard",
		Subsystem: "policy_service",
		Name:      "record_read_failures_total",
		Help:      "Count of individual policy record reads that failed.",
	}, []string{"network"})
)

// PolicyService tracks metrics for purchases and policy listings.
type PolicyService struct {
	network model.Network
}

// NewPolicyService constructs a PolicyService collector.
func NewPolicyService(network model.Network) *PolicyService {
	if network == "" {
		network = "unknown"
	}
	return &PolicyService{network: network}
}

// ObservePurchase records a purchase outcome and its duration.
func (m PolicyService) ObservePurchase(tier model.Tier, outcome model.PurchaseOutcome, started time.Time) {
	purchaseTotal.WithLabelValues(string(m.network), tier.Name(), string(outcome)).Inc()
	purchaseDuration.WithLabelValues(string(m.network), string(outcome)).Observe(time.Since(started).Seconds())
}

// ObserveList records a holder listing.
func (m PolicyService) ObserveList(err error, ids int, started time.Time) {
	status := statusLabel(err)
	listTotal.WithLabelValues(string(m.network), status).Inc()
	listDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	listSize.WithLabelValues(string(m.network)).Observe(float64(ids))
}

// ObserveRecordFailures records how many record reads failed within a listing.
func (m PolicyService) ObserveRecordFailures(failed int) {
	if failed <= 0 {
		return
	}
	recordReadFailures.WithLabelValues(string(m.network)).Add(float64(failed))
}
