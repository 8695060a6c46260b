package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"docxgen/internal/style"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "Print the built-in style spec as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := style.Default()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(spec); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
