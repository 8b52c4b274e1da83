// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/tomtom215/ehealth/internal/logging"
)

// HTTPServer is the part of *http.Server the service drives.
type HTTPServer interface {
	Serve(l net.Listener) error
	Shutdown(ctx context.Context) error
}

// ListenFunc opens the listener for a service. net.Listen by default.
type ListenFunc func(network, address string) (net.Listener, error)

// HTTPServerService runs an HTTP server as a suture service. The listener
// is opened inside Serve so bind failures are returned to the supervisor
// and OnListen callbacks see the real address.
//
//	srv := &http.Server{Handler: router}
//	svc := services.NewHTTPServerService("api-http", cfg.Server.Addr(), srv, 10*time.Second)
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	name            string
	addr            string
	server          HTTPServer
	shutdownTimeout time.Duration
	listen          ListenFunc
	onListen        func(net.Addr)
}

// NewHTTPServerService creates the service. A non-positive shutdownTimeout
// means 10s.
func NewHTTPServerService(name, addr string, server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		name:            name,
		addr:            addr,
		server:          server,
		shutdownTimeout: shutdownTimeout,
		listen:          net.Listen,
	}
}

// OnListen registers fn to run each time the listener is open, before the
// first request is accepted.
func (h *HTTPServerService) OnListen(fn func(net.Addr)) *HTTPServerService {
	h.onListen = fn
	return h
}

// WithListenFunc replaces net.Listen.
func (h *HTTPServerService) WithListenFunc(fn ListenFunc) *HTTPServerService {
	h.listen = fn
	return h
}

// Serve implements suture.Service. It returns nil after a graceful
// shutdown triggered by ctx, and an error if the server could not listen or
// stopped on its own.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	ln, err := h.listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("%s: listen on %s: %w", h.name, h.addr, err)
	}

	logging.Info().
		Str("service", h.name).
		Str("addr", ln.Addr().String()).
		Msg("HTTP server listening")

	if h.onListen != nil {
		h.onListen(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s failed: %w", h.name, err)
		}
		return fmt.Errorf("%s stopped unexpectedly", h.name)

	case <-ctx.Done():
		// ctx is already canceled; shutdown needs its own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s shutdown failed: %w", h.name, err)
		}
		<-errCh

		logging.Info().Str("service", h.name).Msg("HTTP server stopped")
		return nil
	}
}

// String names the service in supervisor logs.
func (h *HTTPServerService) String() string {
	return h.name
}
