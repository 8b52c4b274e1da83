// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package api

import (
	"net/http"

	"github.com/tomtom215/ehealth/internal/docs"
	"github.com/tomtom215/ehealth/internal/models"
)

// LoginPath is where the login stub is served.
const LoginPath = "/api/auth/login"

// OpenAPIRoutes documents the authentication routes. Only annotated routes
// appear in the published document.
func (h *Handler) OpenAPIRoutes() []docs.Route {
	return []docs.Route{{
		Method: http.MethodPost,
		Path:   LoginPath,
		Operation: docs.Operation{
			Tags:        []string{"Auth"},
			Summary:     "Log in",
			Description: "Placeholder login. Always returns the same token regardless of the credentials sent.",
			OperationID: "login",
			RequestBody: &docs.RequestBody{
				Content: docs.JSONContent(docs.Ref("LoginRequest")),
			},
			Responses: map[string]docs.Response{
				"200": {
					Description: "Token issued",
					Content:     docs.JSONContent(docs.Ref("LoginResponse")),
				},
				"413": {
					Description: "Request body too large",
					Content:     docs.JSONContent(docs.Ref("ErrorResponse")),
				},
				"429": {
					Description: "Rate limit exceeded",
					Content:     docs.JSONContent(docs.Ref("ErrorResponse")),
				},
			},
		},
	}}
}

// Document registers the API's tags and schemas on b and includes the
// handler's route annotations.
func Document(b *docs.Builder, h *Handler) *docs.Builder {
	return b.
		Tag("Auth", "Authentication").
		Schema("LoginRequest", &docs.Schema{
			Type: "object",
			Properties: map[string]*docs.Schema{
				"email":    {Type: "string", Format: "email"},
				"username": {Type: "string"},
				"password": {Type: "string", Format: "password"},
			},
		}).
		Schema("LoginResponse", &docs.Schema{
			Type:     "object",
			Required: []string{"token"},
			Properties: map[string]*docs.Schema{
				"token": {Type: "string", Example: models.StubToken},
			},
		}).
		Schema("ErrorResponse", &docs.Schema{
			Type: "object",
			Properties: map[string]*docs.Schema{
				"status": {Type: "string", Example: models.StatusError},
				"data":   {Type: "object", Nullable: true},
				"metadata": {
					Type: "object",
					Properties: map[string]*docs.Schema{
						"timestamp":  {Type: "string", Format: "date-time"},
						"request_id": {Type: "string"},
					},
				},
				"error": {
					Type:     "object",
					Required: []string{"code", "message"},
					Properties: map[string]*docs.Schema{
						"code":    {Type: "string"},
						"message": {Type: "string"},
					},
				},
			},
		}).
		Include(h)
}
