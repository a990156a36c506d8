package cli

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cloud-config/internal/config"
	"github.com/MKhiriev/go-cloud-config/internal/configserver"
	"github.com/MKhiriev/go-cloud-config/internal/logger"
	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var (
		addr        string
		file        string
		app         string
		contextPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a recorded response as a local config service",
		Long: `Serve answers every config request with the response stored in --file,
for local development against a recorded service response. --user/--password
or --token make the server require those credentials.

Example:
  cloudconfig raw -n billing > billing.json
  cloudconfig serve --file billing.json --addr :8888`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.GetStructuredConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}

			body, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read response file: %w", err)
			}
			if _, err = models.DecodeConfigData(body); err != nil {
				return fmt.Errorf("response file %s: %w", file, err)
			}

			log := logger.New("configserver", cmd.ErrOrStderr(), settings.LogLevel())
			opts := []configserver.Option{
				configserver.WithLogger(log),
				configserver.WithContextPath(contextPath),
			}
			switch {
			case settings.Auth.Token != "":
				opts = append(opts, configserver.WithBearerToken(settings.Auth.Token))
			case settings.Auth.User != "":
				opts = append(opts, configserver.WithBasicAuth(settings.Auth.User, settings.Auth.Password))
			}

			srv := configserver.New(opts...)
			srv.HandleRaw(app, http.StatusOK, body)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8888", "Listen address")
	cmd.Flags().StringVar(&file, "file", "", "Recorded response (JSON)")
	cmd.Flags().StringVar(&app, "app", "", "Serve only this application name, all names if empty")
	cmd.Flags().StringVar(&contextPath, "context-path", "", "Context path the routes are mounted under")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
