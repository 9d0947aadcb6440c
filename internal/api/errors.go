package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MsgUnexpected is shown when no usable response was obtained.
const MsgUnexpected = "An unexpected error occurred"

// ErrUnexpected marks failures where the backend gave no usable response:
// network errors, cancelled contexts and undecodable bodies.
var ErrUnexpected = errors.New("no usable response from backend")

// Error is a transport error. Message is always human readable.
type Error struct {
	Status  int                 // 0 when no response was received
	Message string              // backend message, "HTTP <status>" or MsgUnexpected
	Fields  map[string][]string // per-field errors from the error body, if any
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// errorBody is the error shape the backend sends with non-2xx responses.
type errorBody struct {
	Detail  string              `json:"detail,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// unexpected wraps cause as a no-response transport error.
func unexpected(cause error) *Error {
	return &Error{Message: MsgUnexpected, Err: fmt.Errorf("%w: %w", ErrUnexpected, cause)}
}

// statusError builds an *Error from a non-2xx response. The body is parsed on
// a best-effort basis; anything unreadable falls back to "HTTP <status>".
func statusError(resp *http.Response) *Error {
	e := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP %d", resp.StatusCode),
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil || len(b) == 0 {
		return e
	}
	var body errorBody
	// Some endpoints return a bare list or plain text; those keep the fallback.
	if json.Unmarshal(b, &body) != nil {
		return e
	}
	switch {
	case body.Message != "":
		e.Message = body.Message
	case body.Detail != "":
		e.Message = body.Detail
	}
	e.Fields = body.Errors
	return e
}

// IsTransport reports whether err came from the transport layer, as opposed
// to local validation or a business rejection.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
