/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"

	"github.com/trustbloc/vcs-event-listener/pkg/flow"
)

type healthStatus struct {
	Status     health.AvailabilityStatus `json:"status"`
	Components map[string]checkResult    `json:"components,omitempty"`
	Flows      map[flow.State]int        `json:"flows,omitempty"`
}

type checkResult struct {
	health.CheckResult
	LastResponseTime    string `json:"last_response_time,omitempty"`
	AverageResponseTime string `json:"avg_response_time,omitempty"`
}

// JSONResultWriter writes the checker result with per-check response times and,
// when configured, the number of flows in each state.
type JSONResultWriter struct {
	responseTimes *ResponseTimes
	flowSummary   func() map[flow.State]int
}

// WriterOpt configures the JSONResultWriter.
type WriterOpt func(rw *JSONResultWriter)

// WithFlowSummary adds the flow state summary to every response.
func WithFlowSummary(summary func() map[flow.State]int) WriterOpt {
	return func(rw *JSONResultWriter) {
		rw.flowSummary = summary
	}
}

// NewJSONResultWriter returns a writer that reads response times from rt.
func NewJSONResultWriter(rt *ResponseTimes, opts ...WriterOpt) *JSONResultWriter {
	rw := &JSONResultWriter{
		responseTimes: rt,
	}

	for _, opt := range opts {
		opt(rw)
	}

	return rw
}

// Write implements health.ResultWriter.
func (rw *JSONResultWriter) Write(
	result *health.CheckerResult,
	status int,
	w http.ResponseWriter,
	_ *http.Request,
) error {
	r := &healthStatus{Status: result.Status}

	if result.Details != nil && len(*result.Details) > 0 {
		r.Components = make(map[string]checkResult, len(*result.Details))

		for name, cr := range *result.Details {
			c := checkResult{CheckResult: cr}

			if t, ok := rw.responseTimes.Get(name); ok {
				c.LastResponseTime = t.LastResponseTime.String()
				c.AverageResponseTime = t.AverageResponseTime.String()
			}

			r.Components[name] = c
		}
	}

	if rw.flowSummary != nil {
		r.Flows = rw.flowSummary()
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal health status: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
