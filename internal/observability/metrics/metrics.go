// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ai_media_gateway"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// RPC metrics
	RPCRequestsTotal *prometheus.CounterVec
	RPCDuration      *prometheus.HistogramVec

	// Audio payload metrics
	AudioBytesReceived prometheus.Counter
	AudioOversized     prometheus.Counter

	// Provider call metrics
	ProviderLatency *prometheus.HistogramVec
	ProviderErrors  *prometheus.CounterVec

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		// RPC metrics
		RPCRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of gateway method calls by outcome",
		}, []string{"method", "outcome"}),
		RPCDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_request_duration_seconds",
			Help:      "End-to-end duration of gateway method calls",
			Buckets:   []float64{0.005, 0.025, 0.1, 0.5, 1, 2.5, 10, 30, 60},
		}, []string{"method"}),

		// Audio payload metrics
		AudioBytesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_bytes_received_total",
			Help:      "Total decoded audio bytes accepted by the gateway",
		}),
		AudioOversized: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audio_oversized_total",
			Help:      "Total requests rejected for exceeding the audio size limit",
		}),

		// Provider call metrics
		ProviderLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_latency_seconds",
			Help:      "Latency of transcription provider calls",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"provider"}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "Total transcription provider call failures",
		}, []string{"provider"}),

		// Kafka publish metrics
		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total Kafka publish attempts",
		}, []string{"topic", "event_type"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total Kafka publish failures",
		}, []string{"topic", "event_type"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Latency of Kafka publish calls",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordRPC records one gateway method call.
func (m *Metrics) RecordRPC(method, outcome string, durationSeconds float64) {
	m.RPCRequestsTotal.WithLabelValues(method, outcome).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(durationSeconds)
}

// RecordAudioAccepted records decoded audio bytes that passed validation.
func (m *Metrics) RecordAudioAccepted(bytes int) {
	m.AudioBytesReceived.Add(float64(bytes))
}

// RecordAudioOversized records a request rejected for payload size.
func (m *Metrics) RecordAudioOversized() {
	m.AudioOversized.Inc()
}

// RecordProviderCall records one transcription provider call.
func (m *Metrics) RecordProviderCall(provider string, err error, latencySeconds float64) {
	m.ProviderLatency.WithLabelValues(provider).Observe(latencySeconds)
	if err != nil {
		m.ProviderErrors.WithLabelValues(provider).Inc()
	}
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic, eventType string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic, eventType).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic, eventType).Inc()
	}
}
