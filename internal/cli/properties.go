package cli

import (
	"github.com/MKhiriev/go-cloud-config/cloudconfig"
	"github.com/MKhiriev/go-cloud-config/internal/render"
	"github.com/spf13/cobra"
)

type documentFlags struct {
	format string
	indent int
}

func (f *documentFlags) register(cmd *cobra.Command, indent int) {
	cmd.Flags().StringVarP(&f.format, "format", "f", string(render.FormatJSON), "Output format: json or yaml")
	cmd.Flags().IntVar(&f.indent, "indent", indent, "Indentation width, 0 for compact JSON")
}

func (f *documentFlags) write(cmd *cobra.Command, v any) error {
	format, err := render.ParseFormat(f.format)
	if err != nil {
		return err
	}
	return render.Document(cmd.OutOrStdout(), v, format, f.indent)
}

func newPropertiesCommand() *cobra.Command {
	var doc documentFlags

	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Print the effective flat properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return doc.write(cmd, cfg.Properties())
		},
	}

	doc.register(cmd, 2)
	return cmd
}

func newObjectCommand() *cobra.Command {
	var (
		doc   documentFlags
		merge bool
	)

	cmd := &cobra.Command{
		Use:   "object",
		Short: "Print the configuration as a nested object",
		Long: `Object rebuilds the nested structure encoded in keys such as
"db.hosts[1].port". With --merge, arrays defined by several property sources
are merged cell by cell; otherwise the most specific source's array wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			root, err := cfg.ToObject(cloudconfig.WithMerge(merge))
			if err != nil {
				return err
			}
			return doc.write(cmd, root)
		},
	}

	doc.register(cmd, 2)
	cmd.Flags().BoolVar(&merge, "merge", false, "Merge arrays across property sources")
	return cmd
}
