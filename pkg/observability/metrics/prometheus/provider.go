/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vcs-event-listener/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. When httpServer is nil
// the metrics are expected to be served by the main server through Handler.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics HTTP server failed", log.WithError(fmt.Errorf("start metrics HTTP server: %w", err)))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the event listener.
type PromMetrics struct {
	flowInitiated        *prometheus.CounterVec
	flowInitiationFailed *prometheus.CounterVec
	flowInitiationTime   *prometheus.HistogramVec
	flowCompleted        *prometheus.CounterVec

	eventReceived       *prometheus.CounterVec
	eventUnmatched      prometheus.Counter
	correlationMismatch prometheus.Counter
	duplicateCompletion prometheus.Counter
	reactionFailed      prometheus.Counter

	credentialSubmissionTime   prometheus.Histogram
	credentialSubmissionFailed prometheus.Counter

	httpClientRequestTime *prometheus.HistogramVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		flowInitiated: newCounterVec(metrics.Flow, metrics.FlowInitiatedMetric,
			"The number of flows initiated against the delegated service.", "kind"),
		flowInitiationFailed: newCounterVec(metrics.Flow, metrics.FlowInitiationFailedTotal,
			"The number of flow initiations that failed.", "kind"),
		flowInitiationTime: newHistogramVec(metrics.Flow, metrics.FlowInitiationTimeMetric,
			"The time (in seconds) it takes to initiate a flow.", "kind"),
		flowCompleted: newCounterVec(metrics.Flow, metrics.FlowCompletedMetric,
			"The number of flows completed.", "kind"),
		eventReceived: newCounterVec(metrics.Event, metrics.EventReceivedMetric,
			"The number of recognized callback events.", "tag"),
		eventUnmatched: newCounter(metrics.Event, metrics.EventUnmatchedMetric,
			"The number of callback payloads that matched no known event.", nil),
		correlationMismatch: newCounter(metrics.Event, metrics.EventCorrelationMismatch,
			"The number of events that referred to an unknown flow.", nil),
		duplicateCompletion: newCounter(metrics.Event, metrics.EventDuplicateCompletion,
			"The number of events for flows that were already completed.", nil),
		reactionFailed: newCounter(metrics.Event, metrics.EventReactionFailedMetric,
			"The number of reactions that failed with an I/O error.", nil),
		credentialSubmissionTime: newHistogram(metrics.Credential, metrics.CredentialSubmissionTime,
			"The time (in seconds) it takes to submit the credential.", nil),
		credentialSubmissionFailed: newCounter(metrics.Credential, metrics.CredentialSubmissionFailures,
			"The number of credential submissions that failed after retries.", nil),
		httpClientRequestTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.HTTPClient,
			Name:      metrics.HTTPClientRequestMetric,
			Help:      "The time (in seconds) of outbound HTTP requests.",
		}, []string{"client", "code", "method"}),
	}

	registerMetrics(pm)

	return pm
}

// FlowInitiated increments the number of initiated flows.
func (pm *PromMetrics) FlowInitiated(kind string) {
	pm.flowInitiated.WithLabelValues(kind).Inc()
}

// FlowInitiationFailed increments the number of failed initiations.
func (pm *PromMetrics) FlowInitiationFailed(kind string) {
	pm.flowInitiationFailed.WithLabelValues(kind).Inc()
}

// FlowInitiationTime records the time for a flow initiation.
func (pm *PromMetrics) FlowInitiationTime(kind string, value time.Duration) {
	pm.flowInitiationTime.WithLabelValues(kind).Observe(value.Seconds())

	logger.Debug("flow initiation time", log.WithDuration(value))
}

// FlowCompleted increments the number of completed flows.
func (pm *PromMetrics) FlowCompleted(kind string) {
	pm.flowCompleted.WithLabelValues(kind).Inc()
}

// EventReceived increments the number of recognized events.
func (pm *PromMetrics) EventReceived(tag string) {
	pm.eventReceived.WithLabelValues(tag).Inc()
}

// EventUnmatched increments the number of unrecognized payloads.
func (pm *PromMetrics) EventUnmatched() {
	pm.eventUnmatched.Inc()
}

// CorrelationMismatch increments the number of events for unknown flows.
func (pm *PromMetrics) CorrelationMismatch() {
	pm.correlationMismatch.Inc()
}

// DuplicateCompletion increments the number of events for completed flows.
func (pm *PromMetrics) DuplicateCompletion() {
	pm.duplicateCompletion.Inc()
}

// ReactionFailed increments the number of failed reactions.
func (pm *PromMetrics) ReactionFailed() {
	pm.reactionFailed.Inc()
}

// CredentialSubmissionTime records the time for the credential submission.
func (pm *PromMetrics) CredentialSubmissionTime(value time.Duration) {
	pm.credentialSubmissionTime.Observe(value.Seconds())

	logger.Debug("credential submission time", log.WithDuration(value))
}

// CredentialSubmissionFailed increments the number of failed submissions.
func (pm *PromMetrics) CredentialSubmissionFailed() {
	pm.credentialSubmissionFailed.Inc()
}

// InstrumentHTTPTransport records the duration of requests made through the transport.
func (pm *PromMetrics) InstrumentHTTPTransport(client metrics.ClientID, transport http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperDuration(
		pm.httpClientRequestTime.MustCurryWith(prometheus.Labels{"client": string(client)}),
		transport,
	)
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.flowInitiated, pm.flowInitiationFailed, pm.flowInitiationTime, pm.flowCompleted,
		pm.eventReceived, pm.eventUnmatched, pm.correlationMismatch, pm.duplicateCompletion, pm.reactionFailed,
		pm.credentialSubmissionTime, pm.credentialSubmissionFailed, pm.httpClientRequestTime,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCounterVec(subsystem, name, help string, labelNames ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogramVec(subsystem, name, help string, labelNames ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}
