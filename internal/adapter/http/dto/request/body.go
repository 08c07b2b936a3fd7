package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidBody = errors.New("invalid request body")
	ErrInvalidJSON = errors.New("invalid JSON in request body")
)

// MissingFieldsError lists required fields that were absent or null, in
// schema order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Schema is an ordered list of required top-level fields.
type Schema []string

var (
	PatientFields            = Schema{"doctorId", "name", "dateOfBirth", "email", "gender"}
	PatientWithAddressFields = Schema{"doctorId", "name", "address", "dateOfBirth", "email", "gender"}
	ReportFields             = Schema{"audioFile", "patientId", "doctorId"}
	TemplatePreferenceFields = Schema{"userId", "email", "defaultTemplate"}
)

// Missing returns the schema fields that are absent from body or null.
func (s Schema) Missing(body map[string]any) []string {
	var missing []string
	for _, f := range s {
		if v, ok := body[f]; !ok || v == nil {
			missing = append(missing, f)
		}
	}
	return missing
}

func (s Schema) Validate(body map[string]any) error {
	if missing := s.Missing(body); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// ParseBody decodes a request body that must be a non-empty JSON object.
func ParseBody(raw string) (map[string]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrInvalidBody
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	obj, ok := decoded.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil, ErrInvalidBody
	}
	return obj, nil
}

// Decode parses raw, checks schema, and binds the body onto dst. A field of
// the wrong JSON type makes the whole body invalid.
func Decode(raw string, schema Schema, dst any) (map[string]any, error) {
	body, err := ParseBody(raw)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(body); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return body, nil
}
