// Package metrics exposes Prometheus counters for the ingestion pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// rejection reasons for the webhook receiver
const (
	ReasonAuth       = "auth"
	ReasonValidation = "validation"
)

// Collector holds the pipeline counters on a private registry
type Collector struct {
	registry *prometheus.Registry

	webhookAccepted prometheus.Counter
	webhookRejected *prometheus.CounterVec
	eventsProcessed prometheus.Counter
	eventsParked    prometheus.Counter
	insertRetries   prometheus.Counter
}

// New constructs a collector with all pipeline counters registered
func New() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		webhookAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intelscope",
			Subsystem: "webhook",
			Name:      "accepted_total",
			Help:      "Webhook submissions accepted for processing.",
		}),
		webhookRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intelscope",
			Subsystem: "webhook",
			Name:      "rejected_total",
			Help:      "Webhook submissions rejected at the boundary.",
		}, []string{"reason"}),
		eventsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intelscope",
			Subsystem: "ingest",
			Name:      "events_processed_total",
			Help:      "Bus events processed to a stored signal.",
		}),
		eventsParked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intelscope",
			Subsystem: "ingest",
			Name:      "events_parked_total",
			Help:      "Bus events parked as failed after the consumer gave up.",
		}),
		insertRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "intelscope",
			Subsystem: "ingest",
			Name:      "insert_retries_total",
			Help:      "Signal insert attempts beyond the first.",
		}),
	}

	registry.MustRegister(c.webhookAccepted, c.webhookRejected,
		c.eventsProcessed, c.eventsParked, c.insertRetries)
	return c
}

// Handler returns an HTTP handler exposing the registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// WebhookAccepted counts an accepted submission
func (c *Collector) WebhookAccepted() { c.webhookAccepted.Inc() }

// WebhookRejected counts a rejected submission by reason
func (c *Collector) WebhookRejected(reason string) { c.webhookRejected.WithLabelValues(reason).Inc() }

// EventProcessed counts a successfully processed event
func (c *Collector) EventProcessed() { c.eventsProcessed.Inc() }

// EventParked counts an event parked as failed
func (c *Collector) EventParked() { c.eventsParked.Inc() }

// InsertRetry counts a repeated signal insert attempt
func (c *Collector) InsertRetry() { c.insertRetries.Inc() }
