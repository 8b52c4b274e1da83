// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/ehealth/internal/api"
	"github.com/tomtom215/ehealth/internal/config"
	"github.com/tomtom215/ehealth/internal/logging"
	"github.com/tomtom215/ehealth/internal/metrics"
	"github.com/tomtom215/ehealth/internal/supervisor"
	"github.com/tomtom215/ehealth/internal/supervisor/services"
	"github.com/tomtom215/ehealth/internal/web"
)

const readHeaderTimeout = 10 * time.Second

func (a *app) newAPICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Run the API server",
		Long:  "Run the API server with the login endpoint, health probes, metrics and documentation at DOCS_PATH.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), "api", a.addAPI)
		},
	}
}

func (a *app) newWebCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "web",
		Short: "Run the web client server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), "web", a.addWeb)
		},
	}
}

func (a *app) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server and the web client in one process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), "all", a.addAPI, a.addWeb)
		},
	}
}

// run builds the supervisor tree, lets each add function register its
// services and blocks until ctx is canceled.
func (a *app) run(ctx context.Context, process string, adds ...func(*supervisor.SupervisorTree) error) error {
	metrics.SetBuildInfo(a.version, a.commit, process)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: a.cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	for _, add := range adds {
		if err := add(tree); err != nil {
			return err
		}
	}

	logging.Info().
		Str("process", process).
		Str("version", a.version).
		Str("environment", a.cfg.Server.Environment).
		Msg("Starting eHealth")

	err = tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service did not stop within the shutdown timeout")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logging.Info().Msg("Shutdown complete")
	return nil
}

// addAPI wires the API server into the api layer. The readiness probe
// turns green once the listener is open.
func (a *app) addAPI(tree *supervisor.SupervisorTree) error {
	srv, handler, err := newAPIServer(a.cfg, a.version)
	if err != nil {
		return err
	}

	svc := services.NewHTTPServerService("api-http", a.cfg.Server.Addr(), srv, a.cfg.Server.ShutdownTimeout).
		OnListen(func(addr net.Addr) {
			handler.SetReady(true)
			logging.Info().
				Str("addr", addr.String()).
				Str("docs", a.cfg.Docs.Path).
				Msg("API ready")
		})
	tree.AddAPIService(svc)
	return nil
}

func (a *app) addWeb(tree *supervisor.SupervisorTree) error {
	srv, err := newWebServer(a.cfg)
	if err != nil {
		return err
	}
	tree.AddWebService(services.NewHTTPServerService("web-http", a.cfg.Web.Addr(), srv, a.cfg.Server.ShutdownTimeout))
	return nil
}

func newAPIServer(cfg *config.Config, version string) (*http.Server, *api.Handler, error) {
	handler := api.NewHandler(cfg, version)
	router, err := api.NewRouter(cfg, handler).SetupChi()
	if err != nil {
		return nil, nil, err
	}

	return &http.Server{
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}, handler, nil
}

func newWebServer(cfg *config.Config) (*http.Server, error) {
	handler, err := web.NewHandler(web.Config{})
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Handler:           handler.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}, nil
}
