package aspenlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DecisionsTotal counts policy decisions by outcome ("Allow", "Deny",
// "DefaultDeny"), mirroring internal/metrics.RequestsTotal's
// method/operation/status label shape. Incremented by a host via
// RecordDecision after Policy.Evaluate/PolicySet.Evaluate returns.
var DecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "aspen_decisions_total",
		Help: "Total number of policy decisions by outcome",
	},
	[]string{"outcome"},
)

// RecordDecision increments DecisionsTotal for the given outcome.
func RecordDecision(outcome string) {
	DecisionsTotal.WithLabelValues(outcome).Inc()
}
