package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/chinmay1088/dogechain/api"
	"github.com/chinmay1088/dogechain/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network [base-url|default]",
	Short: "Show or change the explorer",
	Long: `Show the explorer the client talks to, or point it at another instance.
The choice is saved to ~/.dogechain/config.yaml.

Examples:
  dogechain network                          # Show current explorer
  dogechain network http://localhost:2750    # Use a local explorer
  dogechain network default                  # Back to dogechain.info`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current network
	if len(args) == 0 {
		return showCurrentNetwork(cmd)
	}

	baseURL := strings.TrimSpace(args[0])
	if strings.EqualFold(baseURL, "default") {
		baseURL = api.DefaultBaseURL
	}
	if err := validateBaseURL(baseURL); err != nil {
		return err
	}
	return setNetwork(cmd, baseURL)
}

func showCurrentNetwork(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌐 Explorer: %s\n", color.CyanString(cfg.BaseURL))
	fmt.Fprintf(out, "   Chain: %s\n", cfg.Chain)
	if configFileUsed != "" {
		fmt.Fprintf(out, "   Config: %s\n", configFileUsed)
	}
	if cfg.BaseURL == api.DefaultBaseURL {
		fmt.Fprintln(out, "   Using the public dogechain.info explorer")
	}

	body, err := query(cmd, api.EndpointBlockCount, "")
	if err != nil {
		fmt.Fprintf(out, "   Status: %s (%v)\n", color.RedString("unreachable"), err)
		return nil
	}
	fmt.Fprintf(out, "   Status: %s, block %s\n", color.GreenString("reachable"), strings.TrimSpace(body))
	return nil
}

func setNetwork(cmd *cobra.Command, baseURL string) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	path, err := config.Save(dir, "base_url", baseURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🌐 Switched to %s\n", color.GreenString(baseURL))
	fmt.Fprintf(cmd.OutOrStdout(), "   Saved to %s\n", path)
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base url %q. Use an http:// or https:// address", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base url %q: missing host", raw)
	}
	return nil
}
