/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
)

const (
	// ServiceWaitTimeoutFlagName is the delegated service wait timeout.
	ServiceWaitTimeoutFlagName = "service-wait-timeout"
	// ServiceWaitTimeoutFlagUsage describes the usage.
	ServiceWaitTimeoutFlagUsage = "Total time in seconds to wait until the delegated service is reachable before" +
		" initiating flows. Zero disables waiting. Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + ServiceWaitTimeoutEnvKey
	// ServiceWaitTimeoutEnvKey is the delegated service wait timeout.
	ServiceWaitTimeoutEnvKey = "EVENT_LISTENER_SERVICE_WAIT_TIMEOUT"

	// ServiceWaitTimeoutDefault is the default wait timeout in seconds.
	ServiceWaitTimeoutDefault = 30
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(ServiceWaitTimeoutFlagName, "", "", ServiceWaitTimeoutFlagUsage)
}

// ServiceWaitTimeout fetches the number of seconds to wait for the delegated service.
func ServiceWaitTimeout(cmd *cobra.Command) (uint64, error) {
	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, ServiceWaitTimeoutFlagName, ServiceWaitTimeoutEnvKey)
	if timeout == "" {
		return ServiceWaitTimeoutDefault, nil
	}

	v, err := strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %s: %w", ServiceWaitTimeoutFlagName, timeout, err)
	}

	return v, nil
}

// WaitForService pings the delegated service once per second until it responds or the retries are exhausted.
func WaitForService(ctx context.Context, svc pinger, numRetries uint64, logger *log.Log) error {
	if numRetries == 0 {
		return nil
	}

	return retry(ctx, func() error { return svc.Ping(ctx) }, numRetries, time.Second, logger)
}

func retry(ctx context.Context, task func() error, numRetries uint64, sleep time.Duration, logger *log.Log) error {
	return backoff.RetryNotify(
		task,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries), ctx),
		func(retryErr error, t time.Duration) {
			logger.Warn("Delegated service is not reachable, will sleep before trying again.",
				logfields.WithSleep(t), log.WithError(retryErr))
		},
	)
}
