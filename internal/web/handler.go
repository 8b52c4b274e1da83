// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/ehealth/internal/logging"
	"github.com/tomtom215/ehealth/internal/metrics"
	"github.com/tomtom215/ehealth/internal/middleware"
)

//go:embed assets
var assetFS embed.FS

// AssetBase is the URL prefix of the embedded static files.
const AssetBase = "/assets"

// MetricsPath serves the Prometheus collectors of the web process.
const MetricsPath = "/metrics"

// DefaultTitle is the document title of every page.
const DefaultTitle = "eHealth"

// Config controls the web client handler. The zero value serves
// DefaultRoutes with DefaultTitle.
type Config struct {
	Title    string
	Routes   []Route
	Security middleware.SecurityHeadersConfig
}

// Handler serves the web client.
type Handler struct {
	title    string
	routes   []Route
	views    map[string]*View
	security middleware.SecurityHeadersConfig
}

// NewHandler parses the views and checks the route table.
func NewHandler(cfg Config) (*Handler, error) {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Routes == nil {
		cfg.Routes = DefaultRoutes()
	}

	views, err := loadViews()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(cfg.Routes))
	for _, route := range cfg.Routes {
		pattern, err := chiPattern(route.Pattern)
		if err != nil {
			return nil, err
		}
		if seen[pattern] {
			return nil, fmt.Errorf("%w: duplicate pattern %q", ErrInvalidRoute, route.Pattern)
		}
		seen[pattern] = true
		if _, ok := views[route.View]; !ok {
			return nil, fmt.Errorf("%w: unknown view %q", ErrInvalidRoute, route.View)
		}
	}

	return &Handler{
		title:    cfg.Title,
		routes:   cfg.Routes,
		views:    views,
		security: cfg.Security,
	}, nil
}

// Router returns the chi router for the web client.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(func(next http.Handler) http.Handler { return middleware.RequestID(next.ServeHTTP) })
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders(h.security))
	r.Use(chimiddleware.Compress(5))

	assets, err := fs.Sub(assetFS, "assets")
	if err != nil {
		// The directory is embedded at build time; this cannot fail.
		panic(err)
	}
	for _, name := range assetFiles(assets) {
		serve := cacheAssets(serveAsset(assets, name))
		r.Get(AssetBase+"/"+name, serve)
		r.Head(AssetBase+"/"+name, serve)
	}

	r.Handle(MetricsPath, promhttp.Handler())

	for _, route := range h.routes {
		pattern, _ := chiPattern(route.Pattern)
		render := h.render(h.views[route.View])
		r.Get(pattern, render)
		r.Head(pattern, render)
	}

	// Paths outside the route table, including unknown asset paths and
	// directories, still get the rendered page.
	r.NotFound(h.render(h.views[ViewNotFound]))

	return r
}

// render serves view with its status code.
func (h *Handler) render(view *View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := view.Render(PageData{
			Title:     h.title,
			AssetBase: AssetBase,
			Path:      r.URL.Path,
		})
		if err != nil {
			metrics.RecordRenderError()
			logging.CtxErr(r.Context(), err).Str("view", view.Name).Msg("Failed to render page")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(view.Status)
		metrics.RecordPageRender(view.Name, strconv.Itoa(view.Status))

		if r.Method == http.MethodHead {
			return
		}
		if _, err := w.Write(page); err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write page")
		}
	}
}

// assetFiles lists the regular files in fsys, slash-separated.
func assetFiles(fsys fs.FS) []string {
	var names []string
	_ = fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			names = append(names, name)
		}
		return err
	})
	return names
}

func serveAsset(fsys fs.FS, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, fsys, name)
	})
}

func cacheAssets(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	}
}
