// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package docs

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// initializerFile is served next to the Swagger UI assets. Keeping the
// bootstrap code out of the HTML lets the page run under script-src 'self'.
const initializerFile = "ehealth-initializer.js"

// UIConfig configures the documentation UI.
type UIConfig struct {
	// BasePath is where the handler is mounted, e.g. "/api-docs".
	BasePath string

	// InstanceName is the swag registry name holding the document.
	InstanceName string

	// Title is the HTML page title.
	Title string

	// DocExpansion is list, full or none. Default: list.
	DocExpansion string

	// DeepLinking toggles Swagger UI deep links.
	DeepLinking bool
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  <link rel="stylesheet" type="text/css" href="{{.BasePath}}/swagger-ui.css">
  <link rel="icon" type="image/png" href="{{.BasePath}}/favicon-32x32.png" sizes="32x32">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="{{.BasePath}}/swagger-ui-bundle.js" charset="UTF-8"></script>
  <script src="{{.BasePath}}/swagger-ui-standalone-preset.js" charset="UTF-8"></script>
  <script src="{{.BasePath}}/` + initializerFile + `" charset="UTF-8"></script>
</body>
</html>
`))

// UIHandler serves the documentation under cfg.BasePath:
//
//	GET {base}, {base}/, {base}/index.html  interactive UI
//	GET {base}/doc.json                     the registered document
//	GET {base}/<asset>                      Swagger UI assets
//
// Mount the returned router at cfg.BasePath.
func UIHandler(cfg UIConfig) (http.Handler, error) {
	base := strings.TrimRight(cfg.BasePath, "/")
	if !strings.HasPrefix(base, "/") {
		return nil, fmt.Errorf("docs base path must be absolute: %q", cfg.BasePath)
	}
	if cfg.InstanceName == "" {
		cfg.InstanceName = DefaultInstanceName
	}
	if cfg.DocExpansion == "" {
		cfg.DocExpansion = "list"
	}

	var page bytes.Buffer
	if err := indexTemplate.Execute(&page, struct{ Title, BasePath string }{cfg.Title, base}); err != nil {
		return nil, fmt.Errorf("render docs index: %w", err)
	}

	initJS, err := initializerScript(base+"/doc.json", cfg)
	if err != nil {
		return nil, err
	}

	index := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page.Bytes())
	}

	r := chi.NewRouter()
	r.Get("/", index)
	r.Get("/index.html", index)
	r.Get("/"+initializerFile, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		_, _ = w.Write(initJS)
	})
	r.Get("/*", httpSwagger.Handler(
		httpSwagger.URL(base+"/doc.json"),
		httpSwagger.InstanceName(cfg.InstanceName),
		httpSwagger.DeepLinking(cfg.DeepLinking),
		httpSwagger.DocExpansion(cfg.DocExpansion),
		httpSwagger.DomID("swagger-ui"),
	))
	return r, nil
}

// initializerScript renders the Swagger UI bootstrap. Options are JSON
// encoded so no value can break out of the script.
func initializerScript(docURL string, cfg UIConfig) ([]byte, error) {
	opts, err := json.Marshal(map[string]interface{}{
		"url":          docURL,
		"dom_id":       "#swagger-ui",
		"deepLinking":  cfg.DeepLinking,
		"docExpansion": cfg.DocExpansion,
		"layout":       "StandaloneLayout",
	})
	if err != nil {
		return nil, fmt.Errorf("encode swagger ui options: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("window.onload = function () {\n")
	b.WriteString("  var opts = ")
	b.Write(opts)
	b.WriteString(";\n")
	b.WriteString("  opts.presets = [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset];\n")
	b.WriteString("  opts.plugins = [SwaggerUIBundle.plugins.DownloadUrl];\n")
	b.WriteString("  window.ui = SwaggerUIBundle(opts);\n")
	b.WriteString("};\n")
	return b.Bytes(), nil
}
