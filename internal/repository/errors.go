package repository

import (
	"errors"
	"fmt"
)

// ErrRequestFailed is wrapped by every RequestError.
var ErrRequestFailed = errors.New("request failed")

// ErrTrailingData is returned when a body holds a second JSON value after the first.
var ErrTrailingData = errors.New("invalid JSON: data after top-level value")

// Operation names carried by RequestError.Op.
const (
	OpListOperadoras       = "ListOperadoras"
	OpGetOperadora         = "GetOperadora"
	OpGetOperadoraDetalhes = "GetOperadoraDetalhes"
	OpGetTop5              = "GetTop5"
	OpGetMediaPorConta     = "GetMediaPorConta"
	OpHealth               = "Health"
)

// Fixed failure messages, one per resource.
const (
	MsgListOperadoras       = "error fetching operators"
	MsgGetOperadora         = "error fetching operator"
	MsgGetOperadoraDetalhes = "error fetching operator details"
	MsgGetTop5              = "error fetching statistics"
	MsgGetMediaPorConta     = "error fetching average by account"
	MsgHealth               = "error checking API health"
)

// RequestError is returned when the backend answers with a non-2xx status.
type RequestError struct {
	Op         string
	Message    string
	StatusCode int
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}

// Detail includes the operation and status, for logs.
func (e *RequestError) Detail() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
}
