// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package models

// StubToken is the placeholder credential returned by the login endpoint.
// It is not a signed JWT and must not be trusted by anything.
const StubToken = "your-jwt-token"

// LoginRequest is the body clients are expected to send to the login
// endpoint. Neither field is checked.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Identity returns the email if set, otherwise the username.
func (r *LoginRequest) Identity() string {
	if r == nil {
		return ""
	}
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// LoginResponse is the login endpoint's body. It is written bare, without
// the APIResponse envelope.
type LoginResponse struct {
	Token string `json:"token"`
}
