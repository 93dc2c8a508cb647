/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/vcs-event-listener/cmd/common"
	"github.com/trustbloc/vcs-event-listener/pkg/event/spi"
	"github.com/trustbloc/vcs-event-listener/pkg/flow"
	"github.com/trustbloc/vcs-event-listener/pkg/observability/tracing"
	"github.com/trustbloc/vcs-event-listener/pkg/restapi/v1/callback"
	"github.com/trustbloc/vcs-event-listener/pkg/service/flowinitiator"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the event-listener instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "EVENT_LISTENER_HOST_URL"

	serviceURLFlagName      = "service-url"
	serviceURLFlagShorthand = "s"
	serviceURLFlagUsage     = "Base URL of the delegated issuance and verification service." +
		" Example: http://localhost:8080. " + commonEnvVarUsageText + serviceURLEnvKey
	serviceURLEnvKey = "EVENT_LISTENER_SERVICE_URL"

	correlationIDFlagName  = "correlation-id"
	correlationIDFlagUsage = "Correlation ID shared by the initiated flows and their completion events." +
		" Default: my-first-offer. " + commonEnvVarUsageText + correlationIDEnvKey
	correlationIDEnvKey = "EVENT_LISTENER_CORRELATION_ID"

	credentialFileFlagName  = "credential-file"
	credentialFileFlagUsage = "Path to the pre-signed credential submitted when a credential request is verified. " +
		commonEnvVarUsageText + credentialFileEnvKey
	credentialFileEnvKey = "EVENT_LISTENER_CREDENTIAL_FILE"

	credentialFlagName  = "credential"
	credentialFlagUsage = "Pre-signed credential submitted when a credential request is verified." +
		" Takes precedence over the credential file. " + commonEnvVarUsageText + credentialEnvKey
	credentialEnvKey = "EVENT_LISTENER_CREDENTIAL"

	presentationDefinitionIDFlagName  = "presentation-definition-id"
	presentationDefinitionIDFlagUsage = "Presentation definition ID sent with the presentation request." +
		" Default: " + flowinitiator.DefaultPresentationDefinitionID + ". " +
		commonEnvVarUsageText + presentationDefinitionIDEnvKey
	presentationDefinitionIDEnvKey = "EVENT_LISTENER_PRESENTATION_DEFINITION_ID"

	callbackPathFlagName  = "callback-path"
	callbackPathFlagUsage = "Path that the delegated service delivers events to. Default: " + callback.DefaultPath +
		". " + commonEnvVarUsageText + callbackPathEnvKey
	callbackPathEnvKey = "EVENT_LISTENER_CALLBACK_PATH"

	httpTimeoutFlagName  = "http-timeout"
	httpTimeoutFlagUsage = "Timeout of a single request to the delegated service. Default: 30s. " +
		commonEnvVarUsageText + httpTimeoutEnvKey
	httpTimeoutEnvKey = "EVENT_LISTENER_HTTP_TIMEOUT"

	retryMaxAttemptsFlagName  = "retry-max-attempts"
	retryMaxAttemptsFlagUsage = "Number of retries of a request to the delegated service on network errors," +
		" 5xx and 429 responses. Default: 3. " + commonEnvVarUsageText + retryMaxAttemptsEnvKey
	retryMaxAttemptsEnvKey = "EVENT_LISTENER_RETRY_MAX_ATTEMPTS"

	flowTopicFlagName  = "flow-topic"
	flowTopicFlagUsage = "Topic of the flow outcome events. Default: " + spi.FlowEventTopic + ". " +
		commonEnvVarUsageText + flowTopicEnvKey
	flowTopicEnvKey = "EVENT_LISTENER_FLOW_TOPIC"

	metricsProviderFlagName  = "metrics-provider"
	metricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey
	metricsProviderEnvKey = "EVENT_LISTENER_METRICS_PROVIDER_NAME"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderFlagUsage = "The tracing provider (JAEGER or STDOUT). " +
		commonEnvVarUsageText + tracingProviderEnvKey
	tracingProviderEnvKey = "EVENT_LISTENER_TRACING_PROVIDER"

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameFlagUsage = "The name of the tracing service. Default: event-listener. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey
	tracingServiceNameEnvKey = "EVENT_LISTENER_TRACING_SERVICE_NAME"

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set. " +
		commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "EVENT_LISTENER_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path. " + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "EVENT_LISTENER_TLS_CACERTS"

	tlsServeCertFlagName  = "tls-serve-cert"
	tlsServeCertFlagUsage = "Path to the server certificate to use when serving HTTPS. " +
		commonEnvVarUsageText + tlsServeCertEnvKey
	tlsServeCertEnvKey = "EVENT_LISTENER_TLS_SERVE_CERT"

	tlsServeKeyFlagName  = "tls-serve-key"
	tlsServeKeyFlagUsage = "Path to the private key to use when serving HTTPS. " +
		commonEnvVarUsageText + tlsServeKeyEnvKey
	tlsServeKeyEnvKey = "EVENT_LISTENER_TLS_SERVE_KEY"

	defaultHTTPTimeout        = 30 * time.Second
	defaultRetryMaxAttempts   = 3
	defaultTracingServiceName = "event-listener"
	prometheusMetricsProvider = "prometheus"
)

var errNoCredential = errors.New("neither " + credentialFlagName + " nor " + credentialFileFlagName +
	" (command line flags) nor " + credentialEnvKey + " nor " + credentialFileEnvKey +
	" (environment variables) have been set")

type startupParameters struct {
	hostURL                  string
	serviceURL               string
	correlationID            flow.CorrelationID
	credentialFile           string
	credential               string
	presentationDefinitionID string
	callbackPath             string
	httpTimeout              time.Duration
	retryMaxAttempts         int
	serviceWaitTimeout       uint64
	flowTopic                string
	logLevel                 string
	metricsProviderName      string
	tracingParams            *tracingParams
	tlsParameters            *tlsParameters
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

// nolint: funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	serviceURL, err := cmdutils.GetUserSetVarFromString(cmd, serviceURLFlagName, serviceURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	credential := cmdutils.GetUserSetOptionalVarFromString(cmd, credentialFlagName, credentialEnvKey)
	credentialFile := cmdutils.GetUserSetOptionalVarFromString(cmd, credentialFileFlagName, credentialFileEnvKey)

	if credential == "" && credentialFile == "" {
		return nil, errNoCredential
	}

	correlationID := cmdutils.GetUserSetOptionalVarFromString(cmd, correlationIDFlagName, correlationIDEnvKey)
	if correlationID == "" {
		correlationID = string(flow.DefaultCorrelationID)
	}

	callbackPath := cmdutils.GetUserSetOptionalVarFromString(cmd, callbackPathFlagName, callbackPathEnvKey)
	if callbackPath == "" {
		callbackPath = callback.DefaultPath
	}

	flowTopic := cmdutils.GetUserSetOptionalVarFromString(cmd, flowTopicFlagName, flowTopicEnvKey)
	if flowTopic == "" {
		flowTopic = spi.FlowEventTopic
	}

	httpTimeout, err := getDuration(cmd, httpTimeoutFlagName, httpTimeoutEnvKey, defaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	retryMaxAttempts, err := getRetryMaxAttempts(cmd)
	if err != nil {
		return nil, err
	}

	serviceWaitTimeout, err := common.ServiceWaitTimeout(cmd)
	if err != nil {
		return nil, err
	}

	metricsProviderName, err := getMetricsProviderName(cmd)
	if err != nil {
		return nil, err
	}

	tracingParameters, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	logLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &startupParameters{
		hostURL:        hostURL,
		serviceURL:     serviceURL,
		correlationID:  flow.CorrelationID(correlationID),
		credentialFile: credentialFile,
		credential:     credential,
		presentationDefinitionID: cmdutils.GetUserSetOptionalVarFromString(cmd,
			presentationDefinitionIDFlagName, presentationDefinitionIDEnvKey),
		callbackPath:        callbackPath,
		httpTimeout:         httpTimeout,
		retryMaxAttempts:    retryMaxAttempts,
		serviceWaitTimeout:  serviceWaitTimeout,
		flowTopic:           flowTopic,
		logLevel:            logLevel,
		metricsProviderName: metricsProviderName,
		tracingParams:       tracingParameters,
		tlsParameters:       tlsParams,
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string, defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s] for %s: %w", timeoutStr, flagName, err)
	}

	return timeout, nil
}

func getRetryMaxAttempts(cmd *cobra.Command) (int, error) {
	s := cmdutils.GetUserSetOptionalVarFromString(cmd, retryMaxAttemptsFlagName, retryMaxAttemptsEnvKey)
	if s == "" {
		return defaultRetryMaxAttempts, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid value [%s] for %s: must be a non-negative integer", s, retryMaxAttemptsFlagName)
	}

	return v, nil
}

func getMetricsProviderName(cmd *cobra.Command) (string, error) {
	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)

	switch metricsProvider {
	case "", prometheusMetricsProvider:
		return metricsProvider, nil
	default:
		return "", fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	exporter := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)

	if !tracing.IsExporterSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", exporter)
	}

	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	return &tracingParams{
		exporter:    exporter,
		serviceName: serviceName,
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPoolString := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsSystemCertPoolFlagName,
		tlsSystemCertPoolEnvKey)

	tlsSystemCertPool := false

	if tlsSystemCertPoolString != "" {
		var err error

		tlsSystemCertPool, err = strconv.ParseBool(tlsSystemCertPoolString)
		if err != nil {
			return nil, err
		}
	}

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey),
		serveCertPath:  cmdutils.GetUserSetOptionalVarFromString(cmd, tlsServeCertFlagName, tlsServeCertEnvKey),
		serveKeyPath:   cmdutils.GetUserSetOptionalVarFromString(cmd, tlsServeKeyFlagName, tlsServeKeyEnvKey),
	}, nil
}

func createFlags(startCmd *cobra.Command) {
	common.Flags(startCmd)

	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(serviceURLFlagName, serviceURLFlagShorthand, "", serviceURLFlagUsage)
	startCmd.Flags().StringP(correlationIDFlagName, "", "", correlationIDFlagUsage)
	startCmd.Flags().StringP(credentialFileFlagName, "", "", credentialFileFlagUsage)
	startCmd.Flags().StringP(credentialFlagName, "", "", credentialFlagUsage)
	startCmd.Flags().StringP(presentationDefinitionIDFlagName, "", "", presentationDefinitionIDFlagUsage)
	startCmd.Flags().StringP(callbackPathFlagName, "", "", callbackPathFlagUsage)
	startCmd.Flags().StringP(httpTimeoutFlagName, "", "", httpTimeoutFlagUsage)
	startCmd.Flags().StringP(retryMaxAttemptsFlagName, "", "", retryMaxAttemptsFlagUsage)
	startCmd.Flags().StringP(flowTopicFlagName, "", "", flowTopicFlagUsage)
	startCmd.Flags().StringP(metricsProviderFlagName, "", "", metricsProviderFlagUsage)
	startCmd.Flags().StringP(tracingProviderFlagName, "", "", tracingProviderFlagUsage)
	startCmd.Flags().StringP(tracingServiceNameFlagName, "", "", tracingServiceNameFlagUsage)
	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringSliceP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(tlsServeCertFlagName, "", "", tlsServeCertFlagUsage)
	startCmd.Flags().StringP(tlsServeKeyFlagName, "", "", tlsServeKeyFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "",
		common.LogLevelPrefixFlagUsage)
}
