package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkventory_signups_total",
		Help: "Accounts created.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkventory_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"status"})

	AuthFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkventory_auth_failures_total",
		Help: "Requests rejected by the bearer token middleware.",
	})
)
