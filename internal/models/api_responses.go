// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package models

import (
	"time"
)

// APIResponse is the envelope used for every JSON response of the API
// except the login stub, whose body shape is fixed for existing clients.
//
// Status is "success" or "error". Error is set only for errors.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z", "request_id": "..."},
//	  "error": {"code": "NOT_FOUND", "message": "Resource not found"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata is attached to every envelope.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError carries a machine-readable code and a message safe to show to
// clients. Details is optional.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// NewSuccessResponse wraps data in a success envelope.
func NewSuccessResponse(data interface{}, requestID string) *APIResponse {
	return &APIResponse{
		Status: StatusSuccess,
		Data:   data,
		Metadata: Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID,
		},
	}
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(code, message, requestID string) *APIResponse {
	return &APIResponse{
		Status: StatusError,
		Metadata: Metadata{
			Timestamp: time.Now().UTC(),
			RequestID: requestID,
		},
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	}
}
