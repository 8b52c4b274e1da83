// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tomtom215/ehealth/internal/config"
	"github.com/tomtom215/ehealth/internal/logging"
)

// app carries state shared by the subcommands.
type app struct {
	version string
	commit  string
	out     io.Writer

	envFile string
	cfg     *config.Config
}

func newApp(version, commit string, out io.Writer) *app {
	return &app{version: version, commit: commit, out: out}
}

func newRootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ehealth",
		Short:   "eHealth API server and web client",
		Version: a.version,
		Long: `eHealth serves a healthcare API with generated OpenAPI documentation
and a separate web client.

Configuration is read from defaults, an optional YAML file (CONFIG_PATH or
./config.yaml) and the environment, in that order.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this .env file first")
	rootCmd.SetVersionTemplate("ehealth {{.Version}}\n")
	rootCmd.SetOut(a.out)

	rootCmd.AddCommand(
		a.newAPICommand(),
		a.newWebCommand(),
		a.newServeCommand(),
		a.newOpenAPICommand(),
		a.newVersionCommand(),
	)

	return rootCmd
}

// setup loads the env file and configuration and initializes logging.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", a.envFile, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	a.cfg = cfg

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().
			Strs("cors_origins", cfg.Security.CORSOrigins).
			Msg("Wildcard CORS origin in production; set CORS_ORIGINS to restrict it")
	}
	return nil
}

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// Printing the version needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ehealth version %s\ncommit: %s\n", a.version, a.commit)
			return err
		},
	}
}
