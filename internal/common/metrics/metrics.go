package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "tgbot"

	APISubsystem    = "tgapi"
	PollerSubsystem = "poller"
	RelaySubsystem  = "relay"

	OutcomeSuccess   = "success"
	OutcomeAPIError  = "api_error"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
	OutcomeInvalid   = "invalid_request"
)

// Метрики вызовов Bot API.
var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "requests_total",
			Help:      "Total number of Telegram Bot API calls",
		},
		[]string{"operation", "kind", "outcome"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: APISubsystem,
			Name:      "request_duration_seconds",
			Help:      "Telegram Bot API call duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation", "kind"},
	)
)

// Метрики long polling.
var (
	PollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: PollerSubsystem,
			Name:      "polls_total",
			Help:      "Total number of getUpdates polls",
		},
		[]string{"outcome"},
	)

	PollerUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: PollerSubsystem,
			Name:      "updates_total",
			Help:      "Total number of updates received by polling",
		},
	)

	PollerMappingFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: PollerSubsystem,
			Name:      "mapping_failures_total",
			Help:      "Total number of updates that could not be mapped to typed fields",
		},
	)

	PollerOffset = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: PollerSubsystem,
			Name:      "offset",
			Help:      "Current getUpdates offset",
		},
	)
)

// Метрики пересылки событий.
var (
	RelayPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: RelaySubsystem,
			Name:      "published_total",
			Help:      "Total number of updates published to a sink",
		},
		[]string{"sink", "update_type"},
	)

	RelayFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: RelaySubsystem,
			Name:      "failures_total",
			Help:      "Total number of failed sink publishes",
		},
		[]string{"sink"},
	)
)

func RecordAPIRequest(operation, kind, outcome string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(operation, kind, outcome).Inc()
	APIRequestDuration.WithLabelValues(operation, kind).Observe(duration.Seconds())
}

func RecordPoll(outcome string, updates int, offset int64) {
	PollsTotal.WithLabelValues(outcome).Inc()

	if updates > 0 {
		PollerUpdatesTotal.Add(float64(updates))
	}

	PollerOffset.Set(float64(offset))
}

func RecordUpdateMappingFailure() {
	PollerMappingFailuresTotal.Inc()
}

func RecordRelayPublish(sink, updateType string) {
	RelayPublishedTotal.WithLabelValues(sink, updateType).Inc()
}

func RecordRelayFailure(sink string) {
	RelayFailuresTotal.WithLabelValues(sink).Inc()
}
