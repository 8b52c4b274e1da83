// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

/*
Package web serves the eHealth web client.

The client has a route table with a single rule, "*", which renders the
NotFound view for every path with HTTP 404. Pages are html/template views
embedded in the binary and wrapped in a shared layout; the stylesheet is
served from /assets/index.css. Only embedded files are served under /assets;
any other path there, directories included, gets the NotFound page. /metrics
exposes the Prometheus collectors of the web process.

	h, err := web.NewHandler(web.Config{})
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: cfg.Web.Addr(), Handler: h.Router()}
*/
package web
