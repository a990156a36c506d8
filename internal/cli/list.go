package cli

import (
	"github.com/MKhiriev/go-cloud-config/cloudconfig"
	"github.com/MKhiriev/go-cloud-config/internal/render"
	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var overridden bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties with the source they come from",
		Long: `List prints every effective property with the name of the property
source it comes from. With --overridden, every entry of every source is
listed, most specific source first, and shadowed entries are marked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return render.Table(cmd.OutOrStdout(), cfg.Name(), listRows(cfg, overridden))
		},
	}

	cmd.Flags().BoolVar(&overridden, "overridden", false, "Include values shadowed by more specific sources")
	return cmd
}

func listRows(cfg *cloudconfig.Config, overridden bool) []render.Row {
	sources := cfg.Raw().PropertySources

	if overridden {
		seen := make(map[string]struct{})
		var rows []render.Row
		for _, src := range sources {
			src.Source.Range(func(k string, v models.Value) bool {
				_, shadowed := seen[k]
				seen[k] = struct{}{}
				rows = append(rows, render.Row{Key: k, Value: v, Source: src.Name, Overridden: shadowed})
				return true
			})
		}
		return rows
	}

	var rows []render.Row
	cfg.ForEach(func(k string, v models.Value) {
		rows = append(rows, render.Row{Key: k, Value: v, Source: sourceOf(sources, k)})
	}, false)
	return rows
}

func sourceOf(sources []models.PropertySource, key string) string {
	for _, src := range sources {
		if src.Source.Has(key) {
			return src.Name
		}
	}
	return ""
}
