/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package restapiclient

//go:generate mockgen -destination restapiclient_mocks_test.go -package restapiclient_test -source=restapiclient.go -mock_names httpClient=MockHttpClient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vcs-event-listener/internal/logfields"
)

var logger = log.New("restapiclient")

const (
	offersEndpoint                = "/v1/offers"
	authorizationRequestsEndpoint = "/v1/authorization_requests"
	credentialsEndpoint           = "/v1/credentials"

	defaultMaxRetries = 3
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the delegated issuance/verification service.
type Client struct {
	hostURI    string
	client     httpClient
	maxRetries int
	newBackOff func() backoff.BackOff
}

// Opt is a client option.
type Opt func(c *Client)

// WithMaxRetries sets the number of retries after the first attempt.
func WithMaxRetries(maxRetries int) Opt {
	return func(c *Client) {
		if maxRetries >= 0 {
			c.maxRetries = maxRetries
		}
	}
}

// WithBackOff sets the back-off policy used between retries.
func WithBackOff(newBackOff func() backoff.BackOff) Opt {
	return func(c *Client) {
		c.newBackOff = newBackOff
	}
}

func NewClient(
	hostURI string,
	client httpClient,
	opts ...Opt,
) *Client {
	c := &Client{
		hostURI:    hostURI,
		client:     client,
		maxRetries: defaultMaxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxElapsedTime = 30 * time.Second

			return b
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateOffer creates a credential offer and returns the raw transport string.
func (c *Client) CreateOffer(
	ctx context.Context,
	req *CreateOfferRequest,
) ([]byte, error) {
	return send(ctx, c, http.MethodPost, offersEndpoint, req, isRetryable)
}

// CreateAuthorizationRequest creates a SIOPv2 or OID4VP authorization request and returns
// the raw transport string.
func (c *Client) CreateAuthorizationRequest(
	ctx context.Context,
	req *CreateAuthorizationRequest,
) ([]byte, error) {
	return send(ctx, c, http.MethodPost, authorizationRequestsEndpoint, req, isRetryable)
}

// SubmitCredential submits a signed credential for an offer. The response body is ignored.
// A failure after the request may have reached the service is not retried, see IsIndeterminate.
func (c *Client) SubmitCredential(
	ctx context.Context,
	req *SubmitCredentialRequest,
) error {
	_, err := send(ctx, c, http.MethodPost, credentialsEndpoint, req, isRetryableOnce)

	return err
}

// Ping checks that the delegated service is reachable. Any HTTP response counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := sendInternal[struct{}](ctx, c.client, http.MethodGet, c.hostURI, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil
		}

		return err
	}

	return nil
}

func send[T any](
	ctx context.Context,
	c *Client,
	method, endpoint string,
	req *T,
	retryable func(error) bool,
) ([]byte, error) {
	url := fmt.Sprintf("%s%s", c.hostURI, endpoint)

	var body []byte

	attempt := 0

	err := backoff.RetryNotify(
		func() error {
			attempt++

			b, err := sendInternal(ctx, c.client, method, url, req)
			if err != nil {
				if !retryable(err) {
					return backoff.Permanent(err)
				}

				return err
			}

			body = b

			return nil
		},
		backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx),
		func(err error, sleep time.Duration) {
			logger.Warn("Request to delegated service failed, retrying",
				log.WithURL(url), logfields.WithAttempt(attempt), logfields.WithSleep(sleep), log.WithError(err))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	return body, nil
}
