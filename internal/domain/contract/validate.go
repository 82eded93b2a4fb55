package contract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when the request body is absent, malformed, or
// anything other than a JSON object.
var ErrNotObject = errors.New("body must be an object")

// Validate checks a raw request body against the named agent's request
// contract. The check is structural only: every required field must be
// present, and every present key must be declared in the schema. Declared
// enums and numeric ranges are not enforced. Only the first failure of each
// kind is reported; required fields are checked before unknown keys, and the
// unknown-key error names the first offender in the body's own key order.
func Validate(agent string, body []byte) error {
	pair, ok := Contracts[agent]
	if !ok {
		return fmt.Errorf("no contract registered for agent %q", agent)
	}
	schema := pair.Request

	keys, fields, err := decodeObject(body)
	if err != nil {
		return err
	}

	for _, required := range schema.Required {
		if _, ok := fields[required]; !ok {
			return fmt.Errorf("Missing required field: %s", required)
		}
	}

	for _, key := range keys {
		if _, ok := schema.Properties[key]; !ok {
			return fmt.Errorf("Unknown field: %s", key)
		}
	}

	return nil
}

// decodeObject parses a top-level JSON object, preserving key order. The
// standard map decode loses ordering, so keys are collected with a token
// walk while each value is consumed as raw JSON.
func decodeObject(body []byte) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, ErrNotObject
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, ErrNotObject
	}

	var keys []string
	fields := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, ErrNotObject
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, ErrNotObject
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, ErrNotObject
		}

		if _, seen := fields[key]; !seen {
			keys = append(keys, key)
		}
		fields[key] = value
	}

	// The body must be exactly one complete object: consume the closing
	// brace and require EOF after it, so truncated objects and trailing
	// garbage fail here instead of inside a handler's decode.
	if _, err := dec.Token(); err != nil {
		return nil, nil, ErrNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, nil, ErrNotObject
	}

	return keys, fields, nil
}
