/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package callbackevent

const (
	// CredentialRequestVerifiedTag names a verified credential request in the envelope form.
	CredentialRequestVerifiedTag = "CredentialRequestVerified"
	// SelfIssuedIdentityVerifiedTag names a verified SIOPv2 authorization response in the envelope form.
	SelfIssuedIdentityVerifiedTag = "SIOPv2AuthorizationResponseVerified"
	// PresentationVerifiedTag names a verified OID4VP authorization response in the envelope form.
	PresentationVerifiedTag = "OID4VPAuthorizationResponseVerified"
)

// Event is an inbound completion event. The set of implementations is closed.
type Event interface {
	// Tag returns the envelope tag of the event.
	Tag() string

	isEvent()
}

// CredentialRequestVerified is sent when the holder's credential request for an offer was verified.
type CredentialRequestVerified struct {
	OfferID   string  `json:"offer_id"`
	SubjectID *string `json:"subject_id,omitempty"`
}

func (CredentialRequestVerified) Tag() string { return CredentialRequestVerifiedTag }

func (CredentialRequestVerified) isEvent() {}

// SelfIssuedIdentityVerified is sent when a SIOPv2 authorization response was verified.
type SelfIssuedIdentityVerified struct {
	IDToken string `json:"id_token"`
}

func (SelfIssuedIdentityVerified) Tag() string { return SelfIssuedIdentityVerifiedTag }

func (SelfIssuedIdentityVerified) isEvent() {}

// PresentationVerified is sent when an OID4VP authorization response was verified.
type PresentationVerified struct {
	VPToken string `json:"vp_token"`
}

func (PresentationVerified) Tag() string { return PresentationVerifiedTag }

func (PresentationVerified) isEvent() {}
