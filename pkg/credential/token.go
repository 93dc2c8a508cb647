/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"github.com/go-jose/go-jose/v3/jwt"
)

// UnverifiedStringClaim returns a string claim from a compact JWT without verifying its signature.
func UnverifiedStringClaim(token, name string) (string, bool) {
	tok, err := jwt.ParseSigned(token)
	if err != nil {
		return "", false
	}

	claims := map[string]interface{}{}

	if err = tok.UnsafeClaimsWithoutVerification(&claims); err != nil {
		return "", false
	}

	v, ok := claims[name].(string)
	if !ok || v == "" {
		return "", false
	}

	return v, true
}
