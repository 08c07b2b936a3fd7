package pkg

import "fmt"

// AppError is the error shape returned to API clients.
//
// Code is a stable machine-readable identifier, Message is shown to the
// caller, and Err (optional) keeps the underlying cause for logs.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    map[string]any
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: status}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithFields returns a copy carrying the offending field names.
func (e *AppError) WithFields(fields []string) *AppError {
	cp := *e
	cp.Details = mergeDetails(e.Details, map[string]any{"fields": fields})
	return &cp
}

// WithDetail returns a copy with an extra top-level attribute in the body,
// e.g. the identifier that was looked up.
func (e *AppError) WithDetail(key string, value any) *AppError {
	cp := *e
	cp.Details = mergeDetails(e.Details, map[string]any{key: value})
	return &cp
}

// ToHTTPError renders the error body. Details, when present, are flattened
// next to message and error.
func (e *AppError) ToHTTPError() map[string]any {
	body := map[string]any{"message": e.Message}
	if e.Code != "" {
		body["error"] = e.Code
	}
	for k, v := range e.Details {
		body[k] = v
	}
	return body
}

func mergeDetails(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
