/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package callbackevent

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

const (
	credentialRequestVerifiedSchema = `{
  "type": "object",
  "properties": {
    "offer_id": {"type": "string"},
    "subject_id": {"type": ["string", "null"]}
  },
  "required": ["offer_id"]
}`

	selfIssuedIdentityVerifiedSchema = `{
  "type": "object",
  "properties": {
    "id_token": {"type": "string"}
  },
  "required": ["id_token"]
}`

	presentationVerifiedSchema = `{
  "type": "object",
  "properties": {
    "vp_token": {"type": "string"}
  },
  "required": ["vp_token"]
}`
)

type shape struct {
	tag    string
	schema *gojsonschema.Schema
	build  func(obj gjson.Result) Event
}

// shapes are tried in this order when the payload is not wrapped in an envelope.
var shapes = []*shape{
	mustCompile(CredentialRequestVerifiedTag, credentialRequestVerifiedSchema, func(obj gjson.Result) Event {
		e := CredentialRequestVerified{OfferID: obj.Get("offer_id").String()}

		if subjectID := obj.Get("subject_id"); subjectID.Type == gjson.String {
			s := subjectID.String()
			e.SubjectID = &s
		}

		return e
	}),
	mustCompile(SelfIssuedIdentityVerifiedTag, selfIssuedIdentityVerifiedSchema, func(obj gjson.Result) Event {
		return SelfIssuedIdentityVerified{IDToken: obj.Get("id_token").String()}
	}),
	mustCompile(PresentationVerifiedTag, presentationVerifiedSchema, func(obj gjson.Result) Event {
		return PresentationVerified{VPToken: obj.Get("vp_token").String()}
	}),
}

func mustCompile(tag, schema string, build func(obj gjson.Result) Event) *shape {
	s, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %s", tag, err))
	}

	return &shape{tag: tag, schema: s, build: build}
}

// Decode classifies an inbound payload. It returns false when the payload is not a JSON
// object, repeats a key within an object or matches none of the known event shapes.
//
// A single-key object whose key is a known tag is treated as an envelope and only the
// named shape is tried on its value. Otherwise the shapes are tried in fixed order
// CredentialRequestVerified, SelfIssuedIdentityVerified, PresentationVerified and the first
// match wins.
func Decode(payload []byte) (Event, bool) {
	if !gjson.ValidBytes(payload) {
		return nil, false
	}

	root := gjson.ParseBytes(payload)
	if !root.IsObject() || hasDuplicateKeys(root) {
		return nil, false
	}

	if s, inner, ok := envelope(root); ok {
		return s.match(inner)
	}

	for _, s := range shapes {
		if e, ok := s.match(root); ok {
			return e, true
		}
	}

	return nil, false
}

func hasDuplicateKeys(value gjson.Result) bool {
	if !value.IsObject() && !value.IsArray() {
		return false
	}

	seen := map[string]struct{}{}
	duplicate := false

	value.ForEach(func(key, v gjson.Result) bool {
		if value.IsObject() {
			if _, ok := seen[key.Str]; ok {
				duplicate = true

				return false
			}

			seen[key.Str] = struct{}{}
		}

		duplicate = hasDuplicateKeys(v)

		return !duplicate
	})

	return duplicate
}

func envelope(root gjson.Result) (*shape, gjson.Result, bool) {
	fields := root.Map()
	if len(fields) != 1 {
		return nil, gjson.Result{}, false
	}

	for _, s := range shapes {
		if inner, ok := fields[s.tag]; ok {
			return s, inner, true
		}
	}

	return nil, gjson.Result{}, false
}

func (s *shape) match(obj gjson.Result) (Event, bool) {
	if !obj.IsObject() {
		return nil, false
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(obj.Raw))
	if err != nil || !result.Valid() {
		return nil, false
	}

	return s.build(obj), true
}
