// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

// Package docs generates and serves the eHealth OpenAPI 3.0 document.
//
// The document is assembled once at startup. Static metadata (title,
// version, the bearerAuth JWT scheme and the global security requirement)
// comes from the Builder; paths come only from route annotations that
// handlers contribute through Annotator.
//
//	b := docs.NewBuilder("eHealth API", "1.0.0")
//	b.Include(handler)
//	doc, err := docs.Publish(b, docs.DefaultInstanceName)
//
// Publish registers the rendered JSON with swaggo/swag. UIHandler serves a
// Swagger UI page plus the assets and doc.json from swaggo/http-swagger.
package docs
