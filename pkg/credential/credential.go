/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
)

// ErrEmpty is returned when the credential fixture is empty.
var ErrEmpty = errors.New("credential is empty")

// Claims are the registered claims of a JWT credential, read without verification.
type Claims struct {
	Issuer    string
	Subject   string
	Expiry    *time.Time
	NotBefore *time.Time
}

// Credential is a pre-signed bearer credential submitted as-is to the delegated service.
type Credential struct {
	raw    string
	claims *Claims
}

// Load reads the credential from a file.
func Load(path string) (*Credential, error) {
	b, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read credential file: %w", err)
	}

	return Parse(string(b))
}

// Parse wraps a raw credential. Credentials that are not JWTs are accepted as opaque strings.
func Parse(raw string) (*Credential, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmpty
	}

	c := &Credential{raw: raw}

	tok, err := jwt.ParseSigned(raw)
	if err != nil {
		return c, nil
	}

	registered := jwt.Claims{}

	if err = tok.UnsafeClaimsWithoutVerification(&registered); err != nil {
		return c, nil
	}

	c.claims = &Claims{
		Issuer:    registered.Issuer,
		Subject:   registered.Subject,
		Expiry:    toTime(registered.Expiry),
		NotBefore: toTime(registered.NotBefore),
	}

	return c, nil
}

// Raw returns the credential exactly as it is submitted.
func (c *Credential) Raw() string {
	return c.raw
}

// Claims returns the JWT claims, or false if the credential is not a JWT.
func (c *Credential) Claims() (*Claims, bool) {
	return c.claims, c.claims != nil
}

// SubjectID returns the credential subject, or an empty string if unknown.
func (c *Credential) SubjectID() string {
	if c.claims == nil {
		return ""
	}

	return c.claims.Subject
}

// Expired returns true when the credential carries an expiry that is before now.
func (c *Credential) Expired(now time.Time) bool {
	return c.claims != nil && c.claims.Expiry != nil && c.claims.Expiry.Before(now)
}

func toTime(d *jwt.NumericDate) *time.Time {
	if d == nil {
		return nil
	}

	t := d.Time().UTC()

	return &t
}
