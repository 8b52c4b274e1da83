// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package api

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/tomtom215/ehealth/internal/logging"
	"github.com/tomtom215/ehealth/internal/metrics"
	"github.com/tomtom215/ehealth/internal/models"
)

// Error codes used in the response envelope.
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Sentinel errors for the common cases. Handlers may return them directly.
var (
	ErrNotFound         = NewHTTPError(http.StatusNotFound, ErrCodeNotFound, "Resource not found")
	ErrMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	ErrTooManyRequests  = NewHTTPError(http.StatusTooManyRequests, ErrCodeTooManyRequests, "Too many requests, please try again later")
)

// StatusError is implemented by errors that know their HTTP status and
// envelope code. Errors from the middleware package satisfy it.
type StatusError interface {
	error
	StatusCode() int
	ErrorCode() string
}

// HTTPError is the StatusError used by handlers.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// NewHTTPError creates an HTTPError without a cause.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error     { return e.Err }
func (e *HTTPError) StatusCode() int   { return e.Status }
func (e *HTTPError) ErrorCode() string { return e.Code }

// Wrap returns a copy of e with err as its cause.
func (e *HTTPError) Wrap(err error) *HTTPError {
	return &HTTPError{Status: e.Status, Code: e.Code, Message: e.Message, Err: err}
}

// PanicError carries a recovered panic value to ErrorHandler.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// appHandler is a handler that reports failures by returning them.
type appHandler func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc, sending any returned error to
// ErrorHandler.
func handle(fn appHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			ErrorHandler(w, r, err)
		}
	}
}

// ErrorHandler is the single place where errors become HTTP responses.
// StatusError values keep their status and code. Anything else is a 500
// with a generic message so internal details never reach the client.
func ErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := ErrCodeInternalError
	message := "Internal server error"

	var se StatusError
	if errors.As(err, &se) {
		status = se.StatusCode()
		code = se.ErrorCode()
		message = clientMessage(se)
	}

	logger := logging.Ctx(r.Context())
	var pe *PanicError
	switch {
	case errors.As(err, &pe):
		logger.Error().
			Str("panic", fmt.Sprint(pe.Value)).
			Str("stack", string(pe.Stack)).
			Str("method", r.Method).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("Recovered from panic")
	case status >= http.StatusInternalServerError:
		logger.Error().
			Err(err).
			Str("code", code).
			Str("method", r.Method).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("Request failed")
	default:
		logger.Warn().
			Err(err).
			Int("status", status).
			Str("code", code).
			Str("method", r.Method).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("Request rejected")
	}

	metrics.RecordAPIError(code)
	respondError(w, r, status, code, message)
}

// clientMessage picks the text shown to clients for a StatusError. 5xx
// messages are replaced unless they come from an HTTPError.
func clientMessage(se StatusError) string {
	var he *HTTPError
	if errors.As(se, &he) {
		return he.Message
	}
	if se.StatusCode() >= http.StatusInternalServerError {
		return "Internal server error"
	}
	return se.Error()
}

// Recoverer converts panics in later handlers into a 500 through
// ErrorHandler. http.ErrAbortHandler is re-panicked.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared as panic value
				panic(rec)
			}
			ErrorHandler(w, r, &PanicError{Value: rec, Stack: debug.Stack()})
		}()

		next.ServeHTTP(w, r)
	})
}

// sanitizeLogValue strips newlines and carriage returns so client input
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// newErrorResponse builds the envelope for an error.
func newErrorResponse(r *http.Request, code, message string) *models.APIResponse {
	return models.NewErrorResponse(code, message, logging.RequestIDFromContext(r.Context()))
}
