// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

// Package config loads eHealth configuration with koanf.
//
// Sources, lowest to highest precedence:
//
//  1. Built-in defaults (defaultConfig)
//  2. YAML file: $CONFIG_PATH, else config.yaml / config.yml in the working
//     directory, else /etc/ehealth/config.yaml
//  3. Environment variables
//
// Environment variables:
//
//	HTTP_HOST, HTTP_PORT (or PORT)   API listen address (default 0.0.0.0:5000)
//	WEB_HOST, WEB_PORT               web client listen address (default 0.0.0.0:5173)
//	HTTP_TIMEOUT                     read/write timeout (default 30s)
//	SHUTDOWN_TIMEOUT                 graceful shutdown budget (default 10s)
//	ENVIRONMENT                      development, staging, production, test
//	BODY_LIMIT_BYTES                 JSON body cap (default 102400)
//	CORS_ORIGINS                     comma list (default *)
//	RATE_LIMIT_REQUESTS              per window per IP (default 300)
//	RATE_LIMIT_WINDOW                (default 1m)
//	DISABLE_RATE_LIMIT               true to turn rate limiting off
//	DOCS_PATH                        documentation mount (default /api-docs)
//	DOCS_TITLE, DOCS_VERSION         document info (default "eHealth API", 1.0.0)
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// Example YAML:
//
//	server:
//	  port: 5000
//	  environment: production
//	security:
//	  cors_origins:
//	    - https://ehealth.example.org
//	docs:
//	  path: /api-docs
package config
