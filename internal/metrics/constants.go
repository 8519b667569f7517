package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"

	MetricNamePacksOpened         = "packs_opened_total"
	MetricNameCardsGenerated      = "cards_generated_total"
	MetricNameCardsSold           = "cards_sold_total"
	MetricNameGoldEarned          = "gold_earned_total"
	MetricNameGoldSpent           = "gold_spent_total"
	MetricNameBattlesRecorded     = "battles_recorded_total"
	MetricNameCosmeticsPurchased  = "cosmetics_purchased_total"
	MetricNamePersistenceFailures = "persistence_write_failures_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextEventsPublished    = "Total number of events published on the bus"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextPacksOpened         = "Total number of packs opened"
	HelpTextCardsGenerated      = "Total number of cards generated, by rarity and variant"
	HelpTextCardsSold           = "Total number of cards sold"
	HelpTextGoldEarned          = "Total gold credited to the wallet"
	HelpTextGoldSpent           = "Total gold debited from the wallet"
	HelpTextBattlesRecorded     = "Total battles recorded, by outcome"
	HelpTextCosmeticsPurchased  = "Total cosmetics purchased"
	HelpTextPersistenceFailures = "Total failed durable writes, by namespace"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelPack      = "pack"
	LabelRarity    = "rarity"
	LabelVariant   = "variant"
	LabelOutcome   = "outcome"
	LabelNamespace = "namespace"
)

// Outcome label values
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// Log message constants
const (
	LogMsgEventPayloadDecode = "Failed to decode event payload for metrics"
)
