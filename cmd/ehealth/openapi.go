// eHealth - Healthcare API and Web Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ehealth

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/ehealth/internal/api"
)

func (a *app) newOpenAPICommand() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Long:  "Print the OpenAPI 3.0 document served at DOCS_PATH/doc.json without starting a server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := api.NewRouter(a.cfg, api.NewHandler(a.cfg, a.version)).BuildDocs()
			if err != nil {
				return err
			}

			out, err := doc.IndentedJSON()
			if compact {
				out, err = doc.JSON()
			}
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			return err
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print without indentation")
	return cmd
}
