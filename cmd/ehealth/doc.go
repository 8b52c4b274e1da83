// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

/*
Command ehealth runs the eHealth API server and web client.

Usage:

	ehealth api      # API on HTTP_HOST:HTTP_PORT (default 0.0.0.0:5000)
	ehealth web      # web client on WEB_HOST:WEB_PORT (default 0.0.0.0:5173)
	ehealth serve    # both in one process
	ehealth openapi  # print the OpenAPI document and exit
	ehealth version

The persistent --env-file flag loads a .env file into the environment before
configuration is read. Existing environment variables win over the file.

Each server runs as a supervised service. SIGINT or SIGTERM starts a
graceful shutdown bounded by SHUTDOWN_TIMEOUT.
*/
package main
