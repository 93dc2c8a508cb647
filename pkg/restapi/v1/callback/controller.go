/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package callback

//go:generate mockgen -destination controller_mocks_test.go -package callback_test -source=controller.go -mock_names router=Mockrouter,eventReactor=MockEventReactor,flowLister=MockFlowLister,metricsProvider=MockMetricsProvider

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
	"github.com/trustbloc/vcs-event-listener/pkg/callbackevent"
	"github.com/trustbloc/vcs-event-listener/pkg/flow"
	noopMetricsProvider "github.com/trustbloc/vcs-event-listener/pkg/observability/metrics/noop"
	"github.com/trustbloc/vcs-event-listener/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/vcs-event-listener/pkg/service/flowreactor"
)

var logger = log.New("callback")

const (
	// DefaultPath is the route the delegated service delivers events to.
	DefaultPath = "/event-listener"
	// FlowsPath lists the flows of a correlation ID.
	FlowsPath = "/flows/:correlationID"

	correlationIDParam = "correlationID"
)

// acknowledgement is returned for every delivered event.
var acknowledgement = []byte(`{"status":"received"}`)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type eventReactor interface {
	React(ctx context.Context, event callbackevent.Event) error
}

type flowLister interface {
	List(id flow.CorrelationID) []flow.Record
}

type metricsProvider interface {
	EventReceived(tag string)
	EventUnmatched()
}

type Config struct {
	Reactor eventReactor
	Flows   flowLister
	Metrics metricsProvider
	Path    string
}

type Controller struct {
	reactor eventReactor
	flows   flowLister
	metrics metricsProvider
}

func NewController(router router, cfg *Config) *Controller {
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = &noopMetricsProvider.NoMetrics{}
	}

	path := cfg.Path
	if path == "" {
		path = DefaultPath
	}

	c := &Controller{
		reactor: cfg.Reactor,
		flows:   cfg.Flows,
		metrics: metrics,
	}

	router.POST(path, func(ctx echo.Context) error {
		return c.PostEvent(ctx)
	})
	router.GET(FlowsPath, func(ctx echo.Context) error {
		return c.GetFlows(ctx, ctx.Param(correlationIDParam))
	})

	return c
}

// PostEvent decodes a delivered event and reacts to it. The event source is always acknowledged.
// POST /event-listener.
func (c *Controller) PostEvent(e echo.Context) error {
	req := e.Request()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		logger.Warnc(req.Context(), "Failed to read event body", log.WithError(err))

		return c.acknowledge(e)
	}

	event, ok := callbackevent.Decode(body)
	if !ok {
		c.metrics.EventUnmatched()

		logger.Debugc(req.Context(), "Ignoring unrecognized event")

		return c.acknowledge(e)
	}

	c.metrics.EventReceived(event.Tag())

	logger.Debugc(req.Context(), "Event received", logfields.WithEventKind(event.Tag()))

	ctx := detach(req.Context())

	c.logReaction(ctx, event, c.reactor.React(ctx, event))

	return c.acknowledge(e)
}

// GetFlows returns the flows started for the correlation ID. Recorded tokens are replaced by their fingerprint.
// GET /flows/{correlationID}.
func (c *Controller) GetFlows(ctx echo.Context, correlationID string) error {
	records := c.flows.List(flow.CorrelationID(correlationID))
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "no flows for correlation ID "+correlationID)
	}

	return ctx.JSON(http.StatusOK, lo.Map(records, func(r flow.Record, _ int) flow.Record {
		r.Token = attributeutil.Fingerprint(r.Token)

		return r
	}))
}

// detach keeps the span of the inbound request but not its cancellation, so a sender that gives up
// does not abort a credential submission midway.
func detach(ctx context.Context) context.Context {
	return trace.ContextWithSpan(context.Background(), trace.SpanFromContext(ctx))
}

func (c *Controller) acknowledge(ctx echo.Context) error {
	return ctx.JSONBlob(http.StatusOK, acknowledgement)
}

func (c *Controller) logReaction(ctx context.Context, event callbackevent.Event, err error) {
	var (
		mismatchErr *flowreactor.CorrelationMismatchError
		ioErr       *flowreactor.ReactionIOError
	)

	switch {
	case err == nil:
		logger.Infoc(ctx, "Event handled", logfields.WithEventKind(event.Tag()))
	case errors.Is(err, flowreactor.ErrDuplicateCompletion):
		logger.Infoc(ctx, "Duplicate event ignored", logfields.WithEventKind(event.Tag()))
	case errors.As(err, &mismatchErr):
		logger.Warnc(ctx, "Event correlation mismatch", logfields.WithEventKind(event.Tag()),
			logfields.WithCorrelationID(string(mismatchErr.CorrelationID)))
	case errors.As(err, &ioErr) && ioErr.Unresolved:
		logger.Errorc(ctx, "Event reaction outcome unknown, flow needs operator resolution",
			logfields.WithEventKind(event.Tag()), logfields.WithFlowKind(string(ioErr.Kind)), log.WithError(ioErr.Err))
	case errors.As(err, &ioErr):
		logger.Errorc(ctx, "Event reaction failed", logfields.WithEventKind(event.Tag()),
			logfields.WithFlowKind(string(ioErr.Kind)), log.WithError(ioErr.Err))
	default:
		logger.Errorc(ctx, "Event reaction failed", logfields.WithEventKind(event.Tag()), log.WithError(err))
	}
}
