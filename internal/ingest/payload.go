package ingest

import (
	"strconv"
	"strings"
)

// Payload is an arbitrary decoded JSON object from a CRM webhook or export.
// Accessors are defensive: malformed types read as absent, never as errors.
type Payload map[string]any

// SourceHintKey is the optional payload field that overrides auto-detection.
const SourceHintKey = "_source"

// stringField returns the trimmed string value at key, if present and non-empty.
func (p Payload) stringField(key string) (string, bool) {
	raw, ok := p[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

// numberField returns the numeric value at key. JSON numbers decode as
// float64; numeric strings are tolerated because several CRMs export them.
func (p Payload) numberField(key string) (float64, bool) {
	raw, ok := p[key]
	if !ok {
		return 0, false
	}
	switch value := raw.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

// objectField returns the nested object at key.
func (p Payload) objectField(key string) (Payload, bool) {
	raw, ok := p[key]
	if !ok {
		return nil, false
	}
	value, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	return Payload(value), true
}

// arrayField returns the array at key.
func (p Payload) arrayField(key string) ([]any, bool) {
	raw, ok := p[key]
	if !ok {
		return nil, false
	}
	value, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	return value, true
}

// strictNumberField returns the value at key only when it is a real JSON
// number. Detectors use this; numeric strings are not detection evidence.
func (p Payload) strictNumberField(key string) (float64, bool) {
	raw, ok := p[key]
	if !ok {
		return 0, false
	}
	value, ok := raw.(float64)
	if !ok {
		return 0, false
	}
	return value, true
}

// hasString reports whether any of the keys holds a non-empty string.
func (p Payload) hasString(keys ...string) bool {
	for _, key := range keys {
		if _, ok := p.stringField(key); ok {
			return true
		}
	}
	return false
}

// hasNumber reports whether any of the keys holds a real JSON number.
func (p Payload) hasNumber(keys ...string) bool {
	for _, key := range keys {
		if _, ok := p.strictNumberField(key); ok {
			return true
		}
	}
	return false
}
