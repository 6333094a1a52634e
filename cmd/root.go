package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chinmay1088/dogechain/api"
	"github.com/chinmay1088/dogechain/config"
	"github.com/chinmay1088/dogechain/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "1.0.0"

	configPath  string
	rawFlag     bool
	quietFlag   bool
	verboseFlag bool

	// set up before every command runs
	cfg            *config.Config
	configFileUsed string
	client         *api.Client
	log            *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dogechain",
	Short: "Query the dogechain.info explorer from the command line",
	Long: `dogechain is a command-line client for the dogechain.info query API.
Every command maps to one explorer query and prints the answer, parsed for
humans or raw with --raw.

Features:
  • Address balance, received and sent totals
  • Address validity checks and address/hash conversion
  • Offline address decoding (--offline) without any network access
  • Block height, difficulty and total coins mined
  • Network hash rate and per-block transaction statistics
  • Snapshot export to CSV, JSON or text

Examples:
  dogechain balance D8T...XYZ          # Balance of an address
  dogechain checkaddress D8T...XYZ     # Validate an address
  dogechain decode D8T...XYZ --offline # Decode without the network
  dogechain nethash --limit 5          # Last five hash rate samples
  dogechain network                    # Show the configured explorer`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default ~/.dogechain/config.yaml)")
	flags.String("base-url", api.DefaultBaseURL, "explorer base URL")
	flags.String("chain", api.DefaultChain, "chain name used in query paths")
	flags.Int64("timeout", 30, "request timeout in seconds, 0 disables")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "log as JSON")
	flags.BoolVar(&rawFlag, "raw", false, "print the response body exactly as received")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output (debug logging)")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "print values only")

	// Add subcommands
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(receivedCmd)
	rootCmd.AddCommand(sentCmd)
	rootCmd.AddCommand(checkAddressCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(addressToHashCmd)
	rootCmd.AddCommand(hashToAddressCmd)
	rootCmd.AddCommand(pubKeyToAddressCmd)
	rootCmd.AddCommand(blockCountCmd)
	rootCmd.AddCommand(difficultyCmd)
	rootCmd.AddCommand(totalBCCmd)
	rootCmd.AddCommand(netHashCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// flag name for each config key
var flagKeys = map[string]string{
	"base_url":  "base-url",
	"chain":     "chain",
	"timeout":   "timeout",
	"log_level": "log-level",
	"log_json":  "log-json",
}

func setup(cmd *cobra.Command, args []string) error {
	v := config.NewViper()
	flags := cmd.Root().PersistentFlags()
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	loaded, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	level := loaded.LogLevel
	if verboseFlag {
		level = "debug"
	}
	log = logger.New(level, loaded.LogJSON)

	cfg = loaded
	configFileUsed = v.ConfigFileUsed()
	client = api.NewClient(
		api.WithBaseURL(cfg.BaseURL),
		api.WithChain(cfg.Chain),
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(log),
	)

	log.Debug("client ready",
		zap.String("base_url", cfg.BaseURL),
		zap.String("chain", cfg.Chain),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("config", configFileUsed),
	)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if log != nil {
		_ = log.Sync()
	}
	return nil
}

// versionCmd represents the version command. It needs no config, so a broken
// config file does not stop it.
var versionCmd = &cobra.Command{
	Use:                "version",
	Short:              "Print the version number",
	PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dogechain v%s\n", version)
	},
}
