/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redacted = "[REDACTED]"

// JSON returns an attribute with the value marshaled to JSON. Values at the paths given with
// WithRedacted are replaced: strings with a fingerprint of the value, anything else with [REDACTED].
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	for _, path := range op.redacted {
		v := gjson.GetBytes(b, path)
		if !v.Exists() {
			continue
		}

		replacement := redacted
		if v.Type == gjson.String {
			replacement = Fingerprint(v.Str)
		}

		if r, setErr := sjson.SetBytes(b, path, replacement); setErr == nil {
			b = r
		}
	}

	return attribute.KeyValue{
		Key:   attribute.Key(key),
		Value: attribute.StringValue(string(b)),
	}
}

// Fingerprint returns a redacted form of a token that still lets spans carrying the same token be matched.
func Fingerprint(value string) string {
	if value == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(value))

	return fmt.Sprintf("[REDACTED sha256:%x]", sum[:4])
}

type options struct {
	redacted []string
}

// Opt configures JSON.
type Opt func(*options)

// WithRedacted redacts the value at the given gjson path.
// Refer to https://github.com/tidwall/gjson/blob/master/SYNTAX.md for path syntax.
func WithRedacted(path string) Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, path)
	}
}
