// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package docs

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ehealth/internal/metrics"
)

// BearerAuth is the name of the JWT bearer security scheme.
const BearerAuth = "bearerAuth"

var (
	// ErrDuplicateRoute is returned by Build when two annotations share a
	// method and path.
	ErrDuplicateRoute = errors.New("duplicate route annotation")

	// ErrInvalidRoute is returned by Build for an unknown method or a path
	// that does not start with "/".
	ErrInvalidRoute = errors.New("invalid route annotation")
)

// Route is one annotated endpoint contributed to the document.
type Route struct {
	Method    string
	Path      string
	Operation Operation
}

// Annotator is implemented by anything that documents routes it serves.
type Annotator interface {
	OpenAPIRoutes() []Route
}

// Builder assembles a Document from static metadata plus registered route
// annotations. It is written to at startup and read once by Build.
type Builder struct {
	mu      sync.Mutex
	info    Info
	routes  []Route
	schemas map[string]*Schema
	tags    []Tag
	servers []Server
}

// NewBuilder returns a Builder for a document with the given title and version.
func NewBuilder(title, version string) *Builder {
	return &Builder{
		info:    Info{Title: title, Version: version},
		schemas: make(map[string]*Schema),
	}
}

// Description sets info.description.
func (b *Builder) Description(desc string) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.info.Description = desc
	return b
}

// Server adds a base URL.
func (b *Builder) Server(url, desc string) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.servers = append(b.servers, Server{URL: url, Description: desc})
	return b
}

// Tag adds a tag definition.
func (b *Builder) Tag(name, desc string) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tags = append(b.tags, Tag{Name: name, Description: desc})
	return b
}

// Schema registers a reusable component schema.
func (b *Builder) Schema(name string, s *Schema) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.schemas[name] = s
	return b
}

// Annotate registers route annotations.
func (b *Builder) Annotate(routes ...Route) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes = append(b.routes, routes...)
	return b
}

// Include registers every route an Annotator reports.
func (b *Builder) Include(a Annotator) *Builder {
	return b.Annotate(a.OpenAPIRoutes()...)
}

var allowedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// Build returns the document. Paths come only from annotations; the bearer
// scheme and the global security requirement are always present.
func (b *Builder) Build() (*Document, error) {
	start := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	doc := &Document{
		OpenAPI: OpenAPIVersion,
		Info:    b.info,
		Servers: append([]Server(nil), b.servers...),
		Paths:   make(map[string]PathItem),
		Components: Components{
			SecuritySchemes: map[string]SecurityScheme{
				BearerAuth: {
					Type:         "http",
					Scheme:       "bearer",
					BearerFormat: "JWT",
				},
			},
		},
		Security: []SecurityRequirement{{BearerAuth: []string{}}},
		Tags:     append([]Tag(nil), b.tags...),
	}

	if len(b.schemas) > 0 {
		doc.Components.Schemas = make(map[string]*Schema, len(b.schemas))
		for name, s := range b.schemas {
			doc.Components.Schemas[name] = s
		}
	}

	ops := 0
	for i := range b.routes {
		rt := b.routes[i]
		method := strings.ToUpper(rt.Method)
		if !allowedMethods[method] || !strings.HasPrefix(rt.Path, "/") {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidRoute, rt.Method, rt.Path)
		}

		item, ok := doc.Paths[rt.Path]
		if !ok {
			item = make(PathItem)
			doc.Paths[rt.Path] = item
		}
		key := strings.ToLower(method)
		if _, dup := item[key]; dup {
			return nil, fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, rt.Path)
		}

		op := rt.Operation
		if op.Responses == nil {
			op.Responses = map[string]Response{}
		}
		item[key] = &op
		ops++
	}

	sort.Slice(doc.Tags, func(i, j int) bool { return doc.Tags[i].Name < doc.Tags[j].Name })

	metrics.RecordDocsBuild(ops, time.Since(start))
	return doc, nil
}

// Operations returns the number of operations in the document.
func (d *Document) Operations() int {
	n := 0
	for _, item := range d.Paths {
		n += len(item)
	}
	return n
}

// JSON encodes the document.
func (d *Document) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// IndentedJSON encodes the document with two-space indentation.
func (d *Document) IndentedJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
