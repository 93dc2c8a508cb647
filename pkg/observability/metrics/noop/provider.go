/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"net/http"
	"time"

	"github.com/trustbloc/vcs-event-listener/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

type noopProvider struct{}

// NewProvider returns a provider whose metrics are discarded.
func NewProvider() metrics.Provider {
	return &noopProvider{}
}

func (p *noopProvider) Create() error            { return nil }
func (p *noopProvider) Destroy() error           { return nil }
func (p *noopProvider) Metrics() metrics.Metrics { return GetMetrics() }

func (n *NoMetrics) FlowInitiated(_ string)                       {}
func (n *NoMetrics) FlowInitiationFailed(_ string)                {}
func (n *NoMetrics) FlowInitiationTime(_ string, _ time.Duration) {}
func (n *NoMetrics) FlowCompleted(_ string)                       {}
func (n *NoMetrics) EventReceived(_ string)                       {}
func (n *NoMetrics) EventUnmatched()                              {}
func (n *NoMetrics) CorrelationMismatch()                         {}
func (n *NoMetrics) DuplicateCompletion()                         {}
func (n *NoMetrics) ReactionFailed()                              {}
func (n *NoMetrics) CredentialSubmissionTime(_ time.Duration)     {}
func (n *NoMetrics) CredentialSubmissionFailed()                  {}

func (n *NoMetrics) InstrumentHTTPTransport(_ metrics.ClientID, transport http.RoundTripper) http.RoundTripper {
	return transport
}
