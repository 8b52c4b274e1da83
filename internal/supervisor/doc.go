// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

/*
Package supervisor runs the eHealth HTTP servers under suture v4.

	RootSupervisor ("ehealth")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService ("api-http")
	└── WebSupervisor ("web-layer")
	    └── HTTPServerService ("web-http")

`ehealth api` populates only the API layer and `ehealth web` only the web
layer; `ehealth serve` runs both in one process.

Crashed services are restarted with suture's backoff. Canceling the context
passed to Serve shuts every service down within TreeConfig.ShutdownTimeout.
Supervisor events are logged through sutureslog, which is backed by the
zerolog slog adapter from the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return err
	}
	tree.AddAPIService(services.NewHTTPServerService("api-http", srv, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)

HTTP server adapters live in the services subpackage.
*/
package supervisor
