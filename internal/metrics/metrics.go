// Package metrics exposes the Prometheus collectors for the decision
// service. All counters are registered on the default registry and served
// from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OffersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ruua_offers_total",
		Help: "Loan offers created, by decision tier.",
	}, []string{"tier"})

	PaymentAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ruua_payment_attempts_total",
		Help: "Payment attempts against offers, by outcome.",
	}, []string{"outcome"})

	FraudChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ruua_fraud_checks_total",
		Help: "Fraud checks performed, by resulting risk tier.",
	}, []string{"risk_tier"})
)
