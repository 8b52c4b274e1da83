// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/ehealth/internal/config"
	"github.com/tomtom215/ehealth/internal/docs"
	"github.com/tomtom215/ehealth/internal/middleware"
)

// Router wires the API handlers, middleware and documentation.
type Router struct {
	config        *config.Config
	handler       *Handler
	chiMiddleware *ChiMiddleware
	docsInstance  string
}

// NewRouter creates a Router. The documentation is published under
// docs.DefaultInstanceName.
func NewRouter(cfg *config.Config, handler *Handler) *Router {
	return &Router{
		config:        cfg,
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(&cfg.Security)),
		docsInstance:  docs.DefaultInstanceName,
	}
}

// BuildDocs assembles the OpenAPI document for the configured title and
// version without publishing it.
func (router *Router) BuildDocs() (*docs.Document, error) {
	return Document(router.newDocsBuilder(), router.handler).Build()
}

func (router *Router) newDocsBuilder() *docs.Builder {
	return docs.NewBuilder(router.config.Docs.Title, router.config.Docs.Version).
		Description("Healthcare API. Authentication is a placeholder.")
}

// SetupChi publishes the OpenAPI document and returns the API handler.
func (router *Router) SetupChi() (http.Handler, error) {
	docsPath := strings.TrimRight(router.config.Docs.Path, "/")
	if docsPath == "" {
		return nil, fmt.Errorf("docs path %q conflicts with the welcome route", router.config.Docs.Path)
	}

	if _, err := docs.Publish(Document(router.newDocsBuilder(), router.handler), router.docsInstance); err != nil {
		return nil, fmt.Errorf("publish openapi document: %w", err)
	}

	docsUI, err := docs.UIHandler(docs.UIConfig{
		BasePath:     docsPath,
		InstanceName: router.docsInstance,
		Title:        router.config.Docs.Title,
		DeepLinking:  true,
	})
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(Recoverer)
	r.Use(middleware.SecurityHeaders(middleware.SecurityHeadersConfig{}))
	r.Use(router.chiMiddleware.CORS())
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.JSONBody(router.config.Server.BodyLimitBytes, ErrorHandler))

	r.NotFound(handle(router.handler.NotFound))
	r.MethodNotAllowed(handle(router.handler.MethodNotAllowed))

	r.Get("/", handle(router.handler.Welcome))
	r.Head("/", handle(router.handler.Welcome))

	// ========================
	// Authentication Endpoints
	// ========================
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Post("/login", handle(router.handler.Login))
	})

	// ========================
	// Health & Observability
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", handle(router.handler.HealthLive))
		r.Get("/ready", handle(router.handler.HealthReady))
	})
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Documentation
	// ========================
	r.Mount(docsPath, docsUI)

	return r, nil
}
