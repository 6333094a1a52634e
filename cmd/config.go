package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging defaults, the config file,
.env, DOGECHAIN_* environment variables and flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		if !quietFlag {
			source := configFileUsed
			if source == "" {
				source = "none"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# config file: %s\n", source)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
