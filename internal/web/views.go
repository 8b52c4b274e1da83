// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// ViewNotFound is the only view the client has.
const ViewNotFound = "notfound"

// viewStatus is the HTTP status each view is served with.
var viewStatus = map[string]int{
	ViewNotFound: http.StatusNotFound,
}

// PageData is passed to every view.
type PageData struct {
	Title     string
	AssetBase string
	Path      string
}

// View is a page template wrapped in the shared layout.
type View struct {
	Name   string
	Status int
	tmpl   *template.Template
}

// Render executes the view into a buffer so a failing template never sends
// a partial page.
func (v *View) Render(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("render view %s: %w", v.Name, err)
	}
	return buf.Bytes(), nil
}

// loadViews parses the layout together with each view's content template.
func loadViews() (map[string]*View, error) {
	views := make(map[string]*View, len(viewStatus))
	for name, status := range viewStatus {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		views[name] = &View{Name: name, Status: status, tmpl: tmpl}
	}
	return views, nil
}
