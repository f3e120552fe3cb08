// Package metrics holds the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "learnql"

var (
	// GraphQLRequests counts POST /query requests by HTTP status.
	GraphQLRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_requests_total",
		Help:      "GraphQL requests served, by HTTP status.",
	}, []string{"status"})

	GraphQLDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "graphql_request_duration_seconds",
		Help:      "Time spent executing GraphQL operations.",
		Buckets:   prometheus.DefBuckets,
	})

	// PageSize observes the number of nodes returned by connection fields.
	PageSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "page_size",
		Help:      "Nodes returned per connection page.",
		Buckets:   []float64{0, 1, 5, 10, 20, 30, 40, 50},
	}, []string{"connection"})

	Subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "action_subscribers",
		Help:      "Open actionCreated subscriptions.",
	})

	ActionsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_delivered_total",
		Help:      "Actions handed to subscribers.",
	})

	ActionsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_dropped_total",
		Help:      "Actions skipped because a subscriber buffer was full.",
	})
)
