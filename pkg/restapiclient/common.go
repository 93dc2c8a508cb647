/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package restapiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
)

func sendInternal[T any](
	ctx context.Context,
	client httpClient,
	method string,
	url string,
	request *T,
) ([]byte, error) {
	var buf bytes.Buffer

	if request != nil {
		if reqMarshalErr := json.NewEncoder(&buf).Encode(request); reqMarshalErr != nil {
			return nil, reqMarshalErr
		}
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		method,
		url,
		&buf,
	)

	if err != nil {
		return nil, err
	}

	if request != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, httpErr := client.Do(httpReq)

	if httpErr != nil {
		return nil, &transportError{err: httpErr}
	}

	var body []byte

	if resp.Body != nil {
		defer resp.Body.Close() //nolint:errcheck

		b, bodyErr := io.ReadAll(resp.Body)

		if bodyErr != nil {
			return nil, &transportError{err: bodyErr}
		}

		body = b
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return e.err.Error()
}

func (e *transportError) Unwrap() error {
	return e.err
}

// dialFailed returns true when the connection could not be established, so the request was never sent.
func (e *transportError) dialFailed() bool {
	var opErr *net.OpError

	return errors.As(e.err, &opErr) && opErr.Op == "dial"
}

// IsIndeterminate returns true when the request failed without telling whether the delegated
// service received it, e.g. the context was canceled or the connection dropped after the request
// was written.
func IsIndeterminate(err error) bool {
	var tErr *transportError
	if errors.As(err, &tErr) {
		return !tErr.dialFailed()
	}

	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// isRetryableOnce is the retry policy of non-idempotent requests.
func isRetryableOnce(err error) bool {
	return isRetryable(err) && !IsIndeterminate(err)
}

func isRetryable(err error) bool {
	var tErr *transportError
	if errors.As(err, &tErr) {
		return true
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= http.StatusInternalServerError ||
			statusErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}
