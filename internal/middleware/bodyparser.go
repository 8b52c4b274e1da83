// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package middleware

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ehealth/internal/logging"
)

// DefaultBodyLimit is the JSON body cap when none is configured (100 KiB).
const DefaultBodyLimit int64 = 100 << 10

// BodyTooLargeError is returned when a JSON body exceeds the limit.
type BodyTooLargeError struct {
	Limit int64
}

func (e *BodyTooLargeError) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// StatusCode is 413.
func (e *BodyTooLargeError) StatusCode() int { return http.StatusRequestEntityTooLarge }

// ErrorCode is the envelope code.
func (e *BodyTooLargeError) ErrorCode() string { return "PAYLOAD_TOO_LARGE" }

// BodyReadError wraps a failure reading the request body.
type BodyReadError struct {
	Err error
}

func (e *BodyReadError) Error() string { return "failed to read request body: " + e.Err.Error() }

func (e *BodyReadError) Unwrap() error { return e.Err }

// StatusCode is 400.
func (e *BodyReadError) StatusCode() int { return http.StatusBadRequest }

// ErrorCode is the envelope code.
func (e *BodyReadError) ErrorCode() string { return "BODY_READ_ERROR" }

// ErrorFunc receives errors raised by middleware so they are rendered by the
// same handler as errors returned from route handlers.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

type bodyContextKey struct{}

// JSONBody reads JSON request bodies up to limit bytes, decodes them and
// stores the result in the request context (see JSONBodyFromContext). The
// raw bytes are put back on r.Body for handlers that decode themselves.
//
// Requests without a JSON content type pass through untouched. Bodies over
// the limit are reported to onError as *BodyTooLargeError. Bodies that are
// not valid JSON are logged at debug level and the request continues with no
// decoded value.
func JSONBody(limit int64, onError ErrorFunc) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !isJSONContentType(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}

			if r.ContentLength > limit {
				onError(w, r, &BodyTooLargeError{Limit: limit})
				return
			}

			raw, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
			_ = r.Body.Close()
			if err != nil {
				onError(w, r, &BodyReadError{Err: err})
				return
			}
			if int64(len(raw)) > limit {
				onError(w, r, &BodyTooLargeError{Limit: limit})
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(raw))

			if len(bytes.TrimSpace(raw)) > 0 {
				var decoded interface{}
				if err := json.Unmarshal(raw, &decoded); err != nil {
					logging.Ctx(r.Context()).Debug().
						Err(err).
						Int("bytes", len(raw)).
						Msg("Ignoring malformed JSON body")
				} else {
					r = r.WithContext(context.WithValue(r.Context(), bodyContextKey{}, decoded))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// JSONBodyFromContext returns the decoded body and true, or nil and false if
// the request carried no valid JSON.
func JSONBodyFromContext(ctx context.Context) (interface{}, bool) {
	v := ctx.Value(bodyContextKey{})
	return v, v != nil
}

// isJSONContentType matches application/json and any +json suffix type.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
