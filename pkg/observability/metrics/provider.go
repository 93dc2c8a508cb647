/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"net/http"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "event_listener"

	// Flow initiation against the delegated service.
	Flow                      = "flow"
	FlowInitiatedMetric       = "initiated_total"
	FlowInitiationFailedTotal = "initiation_failed_total"
	FlowInitiationTimeMetric  = "initiation_seconds"
	FlowCompletedMetric       = "completed_total"

	// Inbound callback events.
	Event                     = "event"
	EventReceivedMetric       = "received_total"
	EventUnmatchedMetric      = "unmatched_total"
	EventCorrelationMismatch  = "correlation_mismatch_total"
	EventDuplicateCompletion  = "duplicate_completion_total"
	EventReactionFailedMetric = "reaction_failed_total"

	// Credential submission.
	Credential                   = "credential"
	CredentialSubmissionTime     = "submission_seconds"
	CredentialSubmissionFailures = "submission_failed_total"

	// HTTP client.
	HTTPClient              = "http_client"
	HTTPClientRequestMetric = "request_seconds"

	ClientDelegatedService ClientID = "delegated-service"
)

// ClientID defines the ID of the outbound HTTP client.
type ClientID string

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
//
//nolint:interfacebloat
type Metrics interface {
	FlowInitiated(kind string)
	FlowInitiationFailed(kind string)
	FlowInitiationTime(kind string, value time.Duration)
	FlowCompleted(kind string)
	EventReceived(tag string)
	EventUnmatched()
	CorrelationMismatch()
	DuplicateCompletion()
	ReactionFailed()
	CredentialSubmissionTime(value time.Duration)
	CredentialSubmissionFailed()
	InstrumentHTTPTransport(client ClientID, transport http.RoundTripper) http.RoundTripper
}
