/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/trustbloc/vcs-event-listener/cmd/common"
	"github.com/trustbloc/vcs-event-listener/component/event"
	"github.com/trustbloc/vcs-event-listener/internal/logfields"
	"github.com/trustbloc/vcs-event-listener/pkg/callbackevent"
	"github.com/trustbloc/vcs-event-listener/pkg/credential"
	"github.com/trustbloc/vcs-event-listener/pkg/flow"
	"github.com/trustbloc/vcs-event-listener/pkg/observability/metrics"
	noopMetricsProvider "github.com/trustbloc/vcs-event-listener/pkg/observability/metrics/noop"
	promMetricsProvider "github.com/trustbloc/vcs-event-listener/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/vcs-event-listener/pkg/observability/tracing"
	tracingflowinitiator "github.com/trustbloc/vcs-event-listener/pkg/observability/tracing/wrappers/flowinitiator"
	tracingflowreactor "github.com/trustbloc/vcs-event-listener/pkg/observability/tracing/wrappers/flowreactor"
	"github.com/trustbloc/vcs-event-listener/pkg/restapi/v1/callback"
	"github.com/trustbloc/vcs-event-listener/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/vcs-event-listener/pkg/restapi/v1/logapi"
	"github.com/trustbloc/vcs-event-listener/pkg/restapi/v1/version"
	"github.com/trustbloc/vcs-event-listener/pkg/restapiclient"
	"github.com/trustbloc/vcs-event-listener/pkg/service/flowinitiator"
	"github.com/trustbloc/vcs-event-listener/pkg/service/flowreactor"
)

const (
	healthCheckEndpoint = "/healthcheck"
	readHeaderTimeout   = 10 * time.Second
)

var logger = log.New("event-listener")

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

type flowInitiator interface {
	InitiateAll(ctx context.Context, correlationID flow.CorrelationID) []flowinitiator.Result
}

type eventReactor interface {
	React(ctx context.Context, event callbackevent.Event) error
}

type startOpts struct {
	server  httpServer
	handler *echo.Echo
	out     io.Writer
	version string
}

// StartOpts configures the start command with functional options.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets a custom HTTP server.
func WithHTTPServer(srv httpServer) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// WithVersion sets the version reported by the version endpoints.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithOutput sets the writer that the transport strings are printed to.
func WithOutput(out io.Writer) StartOpts {
	return func(opts *startOpts) {
		opts.out = out
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start event-listener",
		Long: "Start event-listener: initiate the credential offer, self-issued identity and presentation flows," +
			" print their transport strings and serve the callback endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			common.SetDefaultLogLevel(logger, params.logLevel)

			o := &startOpts{out: cmd.OutOrStdout()}

			for _, opt := range opts {
				opt(o)
			}

			return startEventListener(params, o)
		},
	}
}

// nolint: funlen
func startEventListener(params *startupParameters, o *startOpts) error {
	shutdownTracer, tracer, err := tracing.Initialize(&tracing.Config{
		Exporter:       params.tracingParams.exporter,
		ServiceName:    params.tracingParams.serviceName,
		ServiceVersion: o.version,
	})
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}

	defer shutdownTracer()

	isTraceEnabled := params.tracingParams.exporter != tracing.None

	metricsProvider, metrics, err := createMetricsProvider(params.metricsProviderName)
	if err != nil {
		return err
	}

	defer func() {
		if destroyErr := metricsProvider.Destroy(); destroyErr != nil {
			logger.Warn("Failed to destroy metrics provider", log.WithError(destroyErr))
		}
	}()

	cred, err := loadCredential(params)
	if err != nil {
		return err
	}

	if claims, ok := cred.Claims(); ok {
		logger.Info("Pre-signed credential loaded", logfields.WithSubjectID(claims.Subject))
	}

	client, err := createDelegatedServiceClient(params, metrics, isTraceEnabled)
	if err != nil {
		return err
	}

	eventBus, err := event.Initialize(event.Config{Tracer: tracer}, params.flowTopic)
	if err != nil {
		return fmt.Errorf("initialize event bus: %w", err)
	}

	defer func() {
		if closeErr := eventBus.Close(); closeErr != nil {
			logger.Warn("Failed to close event bus", log.WithError(closeErr))
		}
	}()

	eventSvc := eventBus
	registry := flow.NewRegistry()

	initiatorSvc := flowinitiator.New(&flowinitiator.Config{
		DelegatedService:         client,
		Registry:                 registry,
		EventSvc:                 eventSvc,
		EventTopic:               params.flowTopic,
		PresentationDefinitionID: params.presentationDefinitionID,
		Metrics:                  metrics,
	})

	reactorSvc := flowreactor.New(&flowreactor.Config{
		DelegatedService:     client,
		Registry:             registry,
		EventSvc:             eventSvc,
		EventTopic:           params.flowTopic,
		Credential:           cred,
		DefaultCorrelationID: params.correlationID,
		Metrics:              metrics,
	})

	var (
		initiator flowInitiator = initiatorSvc
		reactor   eventReactor  = reactorSvc
	)

	if isTraceEnabled {
		initiator = tracingflowinitiator.Wrap(initiatorSvc, tracer)
		reactor = tracingflowreactor.Wrap(reactorSvc, tracer)
	}

	e := createEcho(params, isTraceEnabled)

	ready := newReadinessController(e)

	healthController := healthcheck.NewController(&healthcheck.Config{DelegatedService: client, Flows: registry})

	e.GET(healthCheckEndpoint, healthController.GetHealthcheck)
	version.NewController(e, version.Config{Version: o.version, ServiceURL: params.serviceURL})
	logapi.NewController(e)
	callback.NewController(e, &callback.Config{
		Reactor: reactor,
		Flows:   registry,
		Metrics: metrics,
		Path:    params.callbackPath,
	})

	if params.metricsProviderName == prometheusMetricsProvider {
		h := promMetricsProvider.NewHandler()
		e.Add(h.Method(), h.Path(), h.Handler())
	}

	srv := o.server
	if srv == nil {
		srv = &http.Server{
			Addr:              params.hostURL,
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}

	logger.Info("Starting event-listener", log.WithURL(params.hostURL),
		zap.String("callbackPath", params.callbackPath))

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- listenAndServe(srv, params.tlsParameters)
	}()

	ctx := context.Background()

	if err = common.WaitForService(ctx, client, params.serviceWaitTimeout, logger); err != nil {
		logger.Warn("Delegated service is not reachable, initiating flows anyway", log.WithURL(params.serviceURL),
			log.WithError(err))
	}

	printTransportStrings(o.out, initiator.InitiateAll(ctx, params.correlationID))

	ready.Ready(true)

	return serverError(<-serveErr)
}

func listenAndServe(srv httpServer, tlsParams *tlsParameters) error {
	if tlsParams.serveCertPath != "" && tlsParams.serveKeyPath != "" {
		return srv.ListenAndServeTLS(tlsParams.serveCertPath, tlsParams.serveKeyPath)
	}

	return srv.ListenAndServe()
}

func serverError(err error) error {
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("event-listener server: %w", err)
	}

	return nil
}

func createEcho(params *startupParameters, isTraceEnabled bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())

	if isTraceEnabled {
		e.Use(otelecho.Middleware(params.tracingParams.serviceName))
	}

	return e
}

func createMetricsProvider(name string) (metrics.Provider, metrics.Metrics, error) {
	var provider metrics.Provider

	switch name {
	case prometheusMetricsProvider:
		provider = promMetricsProvider.NewPrometheusProvider(nil)
	default:
		provider = noopMetricsProvider.NewProvider()
	}

	if err := provider.Create(); err != nil {
		return nil, nil, fmt.Errorf("create metrics provider: %w", err)
	}

	return provider, provider.Metrics(), nil
}

func loadCredential(params *startupParameters) (*credential.Credential, error) {
	if params.credential != "" {
		cred, err := credential.Parse(params.credential)
		if err != nil {
			return nil, fmt.Errorf("parse credential: %w", err)
		}

		return cred, nil
	}

	cred, err := credential.Load(params.credentialFile)
	if err != nil {
		return nil, fmt.Errorf("load credential: %w", err)
	}

	return cred, nil
}

func createDelegatedServiceClient(
	params *startupParameters,
	m metrics.Metrics,
	isTraceEnabled bool,
) (*restapiclient.Client, error) {
	rootCAs, err := tlsutils.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		return nil, fmt.Errorf("get cert pool: %w", err)
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12},
	}

	transport = m.InstrumentHTTPTransport(metrics.ClientDelegatedService, transport)

	if isTraceEnabled {
		transport = otelhttp.NewTransport(transport)
	}

	return restapiclient.NewClient(params.serviceURL,
		&http.Client{Timeout: params.httpTimeout, Transport: transport},
		restapiclient.WithMaxRetries(params.retryMaxAttempts),
	), nil
}

func printTransportStrings(out io.Writer, results []flowinitiator.Result) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}

		fmt.Fprintf(out, "%s: %s\n", r.Kind, r.TransportString)
	}
}
