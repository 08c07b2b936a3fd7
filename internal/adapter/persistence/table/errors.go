package table

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

const codeUnknown = "UnknownError"

// StoreError is returned for every failed table operation.
type StoreError struct {
	Op    string
	Table string
	// Code is the DynamoDB error code, e.g. ProvisionedThroughputExceededException.
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Table, e.Code, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func wrapError(op, tableName string, err error) error {
	code := codeUnknown
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.ErrorCode()
	}
	return &StoreError{Op: op, Table: tableName, Code: code, Err: err}
}
