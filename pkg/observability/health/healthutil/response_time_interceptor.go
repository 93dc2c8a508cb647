/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// ResponseTimeState is the response time record of a single check.
type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
	Count               int
}

// ResponseTimes holds the response times of health checks by check name.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
}

// NewResponseTimes returns an empty response time record.
func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{states: map[string]ResponseTimeState{}}
}

// Get returns the response time state of the named check.
func (rt *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	s, ok := rt.states[name]

	return s, ok
}

func (rt *ResponseTimes) record(name string, elapsed time.Duration) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	s := rt.states[name]

	s.Count++
	s.LastResponseTime = elapsed
	s.AverageResponseTime += (elapsed - s.AverageResponseTime) / time.Duration(s.Count)

	rt.states[name] = s
}

// ResponseTimeInterceptor records how long each check takes.
func ResponseTimeInterceptor(rt *ResponseTimes) health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()

			result := next(ctx, name, state)

			rt.record(name, time.Since(start))

			return result
		}
	}
}
