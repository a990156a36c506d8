package cli

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-config/internal/render"
	"github.com/spf13/cobra"
)

func newRawCommand() *cobra.Command {
	var (
		format string
		spaces int
	)

	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Print the unmodified service response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if f == render.FormatYAML {
				return render.Document(cmd.OutOrStdout(), cfg.Raw(), f, spaces)
			}
			s, err := cfg.ToString(spaces)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatJSON), "Output format: json or yaml")
	cmd.Flags().IntVar(&spaces, "spaces", 2, "Indentation width, 0 for compact JSON")
	return cmd
}
