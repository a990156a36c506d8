// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-config/cloudconfig"
	"github.com/MKhiriev/go-cloud-config/internal/config"
	"github.com/MKhiriev/go-cloud-config/internal/logger"
	"github.com/MKhiriev/go-cloud-config/internal/render"
	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the cloudconfig command tree.
func NewRootCommand(info models.BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cloudconfig",
		Short: "Query a Spring Cloud Config compatible configuration service",
		Long: `cloudconfig fetches the property sources of an application from a
configuration service and prints effective values, listings, the nested
object view or the raw response.

Example:
  cloudconfig get -e http://config:8888 -n billing -p prod db.url
  cloudconfig object -n billing --merge --format yaml
  CLOUD_CONFIG_NAME=billing cloudconfig list --overridden`,
		Version:      info.String(),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newGetCommand(),
		newPropertiesCommand(),
		newListCommand(),
		newObjectCommand(),
		newRawCommand(),
		newServeCommand(),
		newVersionCommand(info),
	)

	return rootCmd
}

// loadConfig resolves the settings of cmd and fetches the configuration.
func loadConfig(cmd *cobra.Command) (*cloudconfig.Config, error) {
	settings, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	req, err := settings.LoadRequest()
	if err != nil {
		return nil, err
	}

	log := logger.New("cloudconfig", cmd.ErrOrStderr(), settings.LogLevel())
	return cloudconfig.Load(cmd.Context(), req, cloudconfig.WithLogger(log.Logger))
}

func newVersionCommand(info models.BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.BuildInfo(cmd.OutOrStdout(), info)
		},
	}
}
