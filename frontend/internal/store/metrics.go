package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var actionsDispatched = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "gamefeed",
		Subsystem: "store",
		Name:      "actions_dispatched_total",
		Help:      "Actions applied by session stores, by action type.",
	},
	[]string{"action"},
)
