package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
	"github.com/tidwall/sjson"
)

// ErrMalformed is wrapped by every parse or shape error on a document.
var ErrMalformed = errors.New("malformed document")

// Parse decodes a PathPlanner document into a generic object.
// Comments and trailing commas are tolerated, and numbers are kept as
// json.Number.
func Parse(data []byte) (map[string]interface{}, error) {
	_, doc, err := parse(data)
	return doc, err
}

// parse returns the document with comments blanked out alongside its
// decoded form. Edits are applied to the returned bytes, so key order
// and layout survive a rewrite.
func parse(data []byte) ([]byte, map[string]interface{}, error) {
	raw := jsonc.ToJSON(data)

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc == nil {
		return nil, nil, fmt.Errorf("%w: document is not an object", ErrMalformed)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}

	return raw, doc, nil
}

// setString replaces the string at path in raw, leaving every other byte
// where it was.
func setString(raw []byte, path, value string) ([]byte, error) {
	out, err := sjson.SetBytes(raw, path, value)
	if err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", path, err)
	}
	return out, nil
}

// getMap safely extracts a nested object from a map
func getMap(m map[string]interface{}, key string) (map[string]interface{}, bool) {
	v, ok := m[key].(map[string]interface{})
	return v, ok
}

// getSlice safely extracts an array from a map
func getSlice(m map[string]interface{}, key string) ([]interface{}, bool) {
	v, ok := m[key].([]interface{})
	return v, ok
}

// getString safely extracts a string from a map
func getString(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
