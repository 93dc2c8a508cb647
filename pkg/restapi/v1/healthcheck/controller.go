/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

//go:generate mockgen -destination controller_mocks_test.go -package healthcheck_test -source=controller.go -mock_names pinger=MockPinger,flowSummarizer=MockFlowSummarizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/vcs-event-listener/pkg/flow"
	"github.com/trustbloc/vcs-event-listener/pkg/observability/health/healthutil"
)

const (
	// DelegatedServiceCheck is the name of the delegated service reachability check.
	DelegatedServiceCheck = "delegated-service"
	// FlowsCheck fails while no flow is awaiting completion or completed.
	FlowsCheck = "flows"

	defaultTimeout = 5 * time.Second
)

var errNoActiveFlow = errors.New("no flow is awaiting completion or completed")

type pinger interface {
	Ping(ctx context.Context) error
}

type flowSummarizer interface {
	Summary() map[flow.State]int
}

// Config holds the health check configuration.
type Config struct {
	DelegatedService pinger
	Flows            flowSummarizer
	Timeout          time.Duration
}

// Controller for health check API.
type Controller struct {
	handler echo.HandlerFunc
}

// NewController returns a controller that reports the availability of the delegated service.
func NewController(cfg *Config) *Controller {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithTimeout(timeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)),
	}

	if cfg.DelegatedService != nil {
		opts = append(opts, health.WithCheck(health.Check{
			Name: DelegatedServiceCheck,
			Check: func(ctx context.Context) error {
				if err := cfg.DelegatedService.Ping(ctx); err != nil {
					return fmt.Errorf("delegated service unreachable: %w", err)
				}

				return nil
			},
		}))
	}

	var writerOpts []healthutil.WriterOpt

	if cfg.Flows != nil {
		opts = append(opts, health.WithCheck(health.Check{
			Name: FlowsCheck,
			Check: func(context.Context) error {
				return checkFlows(cfg.Flows.Summary())
			},
		}))

		writerOpts = append(writerOpts, healthutil.WithFlowSummary(cfg.Flows.Summary))
	}

	checker := health.NewChecker(opts...)

	return &Controller{
		handler: echo.WrapHandler(health.NewHandler(checker,
			health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes, writerOpts...)))),
	}
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	return c.handler(ctx)
}

func checkFlows(summary map[flow.State]int) error {
	if summary[flow.StateAwaitingCompletion]+summary[flow.StateCompleting]+summary[flow.StateCompleted] == 0 {
		return errNoActiveFlow
	}

	return nil
}
