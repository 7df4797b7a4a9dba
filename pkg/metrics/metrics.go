package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	WSMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ws_messages_total",
			Help: "Messages received on the live order channel",
		},
		[]string{"type"}, // order_update|pong|unknown
	)
	WSDecodeFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ws_decode_failures_total",
			Help: "Inbound channel payloads dropped as malformed",
		},
	)
	WSReconnects = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ws_reconnects_total",
			Help: "Reconnection attempts scheduled after abnormal closures",
		},
	)
	WSConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ws_connected",
			Help: "1 while the live order channel is open",
		},
	)
)

var (
	StateOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_state_operations_total",
			Help: "Order state store operations",
		},
		[]string{"op"}, // set_list|set_current|upsert|upsert_miss|prepend|remove
	)
	StateListSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_state_list_size",
			Help: "Number of orders currently held in the visible list",
		},
	)
)

var APIRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_requests_total",
		Help: "Order Service REST calls by endpoint and outcome",
	},
	[]string{"endpoint", "outcome"}, // outcome: ok|error
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			WSMessages, WSDecodeFailures, WSReconnects, WSConnected,
			StateOps, StateListSize,
			APIRequests,
		)
	})
}
