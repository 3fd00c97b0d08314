package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameAuthCallbacks      = "auth_callbacks_total"
	MetricNameTokenExchangeFails = "auth_token_exchange_failures_total"
	MetricNameSessionsIssued     = "sessions_issued_total"
	MetricNamePlatformsLinked    = "platforms_linked_total"
	MetricNamePlatformsUnlinked  = "platforms_unlinked_total"
	MetricNameRobloxLookups      = "roblox_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextAuthCallbacks      = "Total number of OAuth callbacks handled"
	HelpTextTokenExchangeFails = "Total number of failed authorization-code exchanges"
	HelpTextSessionsIssued     = "Total number of session credentials issued"
	HelpTextPlatformsLinked    = "Total number of platform identities linked"
	HelpTextPlatformsUnlinked  = "Total number of platform identities unlinked"
	HelpTextRobloxLookups      = "Total number of public Roblox profile lookups"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelPlatform = "platform"
	LabelOutcome  = "outcome"
	LabelResult   = "result"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Result label values for cache-backed lookups
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
