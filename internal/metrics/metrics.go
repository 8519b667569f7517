package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PacksOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePacksOpened,
			Help: HelpTextPacksOpened,
		},
		[]string{LabelPack},
	)

	CardsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsGenerated,
			Help: HelpTextCardsGenerated,
		},
		[]string{LabelRarity, LabelVariant},
	)

	CardsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCardsSold,
			Help: HelpTextCardsSold,
		},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	BattlesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesRecorded,
			Help: HelpTextBattlesRecorded,
		},
		[]string{LabelOutcome},
	)

	CosmeticsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCosmeticsPurchased,
			Help: HelpTextCosmeticsPurchased,
		},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
		[]string{LabelNamespace},
	)
)

// RecordPersistenceFailure bumps the failure counter for a namespace. Wired
// as the synchronizer's write-error hook.
func RecordPersistenceFailure(namespace string, err error) {
	PersistenceFailures.WithLabelValues(namespace).Inc()
}
