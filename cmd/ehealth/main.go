// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Set by -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCommand(newApp(version, commit, os.Stdout))
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = os.Stderr.WriteString("ehealth: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
