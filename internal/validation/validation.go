package validation

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// Errors accumulates field-scoped validation failures. A write is applied
// only when the map stays empty; otherwise the whole map is returned as the
// 422 body.
type Errors map[string][]string

// Add records a failure reason for field.
func (e Errors) Add(field, reason string) {
	e[field] = append(e[field], reason)
}

// Empty reports whether validation passed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Required fails when value is empty after trimming.
func (e Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
}

// Email fails when value does not parse as an address.
func (e Errors) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		e.Add(field, fmt.Sprintf("The %s field must be a valid email address.", field))
	}
}

// URL fails when a non-empty value is not an absolute URL.
func (e Errors) URL(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		e.Add(field, fmt.Sprintf("The %s field must be a valid URL.", field))
	}
}

// MaxLen fails when value exceeds limit characters.
func (e Errors) MaxLen(field, value string, limit int) {
	if len([]rune(value)) > limit {
		e.Add(field, fmt.Sprintf("The %s field must not be greater than %d characters.", field, limit))
	}
}

// OneOf fails when value is not in allowed.
func (e Errors) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
}

// DecodeString decodes a string field. Absent and JSON null both yield nil
// so callers can tell clearing apart from a wrongly typed value.
func (e Errors) DecodeString(field string, raw json.RawMessage) (*string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		e.Add(field, fmt.Sprintf("The %s field must be a string.", field))
		return nil, false
	}
	return &value, true
}

// DecodeInt decodes an integer field; fractional numbers fail too.
func (e Errors) DecodeInt(field string, raw json.RawMessage) (*int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		e.Add(field, fmt.Sprintf("The %s field must be an integer.", field))
		return nil, false
	}
	return &value, true
}

// DecodeBool decodes a boolean field.
func (e Errors) DecodeBool(field string, raw json.RawMessage) (*bool, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var value bool
	if err := json.Unmarshal(raw, &value); err != nil {
		e.Add(field, fmt.Sprintf("The %s field must be true or false.", field))
		return nil, false
	}
	return &value, true
}

// DecodeJSON decodes raw into dst, recording a shape failure on error.
// Used for the typed blob columns so malformed payloads are rejected at
// write time rather than stored.
func (e Errors) DecodeJSON(field string, raw json.RawMessage, dst any) bool {
	if err := json.Unmarshal(raw, dst); err != nil {
		e.Add(field, fmt.Sprintf("The %s field has an invalid shape.", field))
		return false
	}
	return true
}
