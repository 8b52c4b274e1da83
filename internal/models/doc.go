// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

/*
Package models defines the wire types shared by the API handlers and the
OpenAPI document.

# Response Envelope

Most JSON responses use APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "..."}
	}

Errors set status to "error" and fill the error object with a code and a
message. The login stub is the exception: it returns LoginResponse without
an envelope so that its body is exactly {"token":"your-jwt-token"}.

# Thread Safety

All types are plain values and safe to share once constructed.
*/
package models
