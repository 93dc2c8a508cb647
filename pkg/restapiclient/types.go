/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package restapiclient

import "fmt"

type CreateOfferRequest struct {
	OfferID string `json:"offerId"`
}

type CreateAuthorizationRequest struct {
	Nonce                    string `json:"nonce"`
	PresentationDefinitionID string `json:"presentation_definition_id,omitempty"`
}

type SubmitCredentialRequest struct {
	OfferID    string `json:"offerId"`
	Credential string `json:"credential"`
	IsSigned   bool   `json:"isSigned"`
}

// StatusError is returned when the delegated service replies with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %v with body %v", e.StatusCode, e.Body)
}
