package cli

import (
	"fmt"

	"github.com/MKhiriev/go-cloud-config/keypath"
	"github.com/spf13/cobra"
)

func newGetCommand() *cobra.Command {
	var def string

	cmd := &cobra.Command{
		Use:   "get <key> [key parts...]",
		Short: "Print one effective property value",
		Long: `Get joins its arguments with "." and prints the effective value of that
key. The lookup is exact: "db" does not match "db.url".

Example:
  cloudconfig get db.url
  cloudconfig get db hosts[0]`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			v, ok := cfg.Get(args...)
			if !ok {
				if !cmd.Flags().Changed("default") {
					return fmt.Errorf("%w: %s", ErrKeyNotFound, keypath.Join(args...))
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), def)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return err
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "Value printed when the key is absent")
	return cmd
}
