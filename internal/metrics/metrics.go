package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const (
	namespace = "covid_estimator"

	requestsTotal    = "http_requests_total"
	requestLatencyMs = "http_request_duration_milliseconds"
	estimatesTotal   = "estimates_total"

	// Labels
	codeLabel    = "code"
	methodLabel  = "method"
	pathLabel    = "path"
	outcomeLabel = "outcome"

	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailure = "failure"
)

var latencyBuckets = []float64{1, 5, 10, 50, 100, 500}

var requestsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      requestsTotal,
		Help:      "Number of HTTP requests partitioned by status code, method and path.",
	},
	[]string{codeLabel, methodLabel, pathLabel},
)

var requestLatencyMetric = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      requestLatencyMs,
		Help:      "Time spent on the request partitioned by status code, method and path.",
		Buckets:   latencyBuckets,
	},
	[]string{codeLabel, methodLabel, pathLabel},
)

var estimatesTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      estimatesTotal,
		Help:      "Number of estimate requests partitioned by outcome.",
	},
	[]string{outcomeLabel},
)

func init() {
	prometheus.MustRegister(requestsTotalMetric)
	prometheus.MustRegister(requestLatencyMetric)
	prometheus.MustRegister(estimatesTotalMetric)
}

func ObserveRequest(code, method, path string, latencyMs float64) {
	requestsTotalMetric.WithLabelValues(code, method, path).Inc()
	requestLatencyMetric.WithLabelValues(code, method, path).Observe(latencyMs)
}

func IncreaseEstimatesTotal(outcome string) {
	estimatesTotalMetric.With(prometheus.Labels{outcomeLabel: outcome}).Inc()
}

// Handler exposes the default registry in the prometheus text format.
func Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
}
