package cmd

import (
	"github.com/chinmay1088/dogechain/api"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show the balance of an address",
	Long: `Show the amount of DOGE held at an address.

Examples:
  dogechain balance D8T...XYZ        # Balance of an address
  dogechain balance D8T...XYZ --raw  # Explorer response as-is`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAmount(api.EndpointAddressBalance, "💰 Balance"),
}

var receivedCmd = &cobra.Command{
	Use:   "received <address>",
	Short: "Show the total ever received by an address",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAmount(api.EndpointReceived, "📥 Received"),
}

var sentCmd = &cobra.Command{
	Use:   "sent <address>",
	Short: "Show the total ever sent by an address",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAmount(api.EndpointSent, "📤 Sent"),
}

// runAmount handles the address scoped queries answering with a DOGE amount.
func runAmount(ep api.Endpoint, label string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		addr := firstArg(args)
		body, err := query(cmd, ep, addr)
		if err != nil {
			return err
		}
		if rawFlag {
			printRaw(cmd, body)
			return nil
		}

		amount, err := api.ParseAmount(body)
		if err != nil {
			// not a number, show what the explorer said
			printRaw(cmd, body)
			return nil
		}

		printValue(cmd, label, amount.String()+" DOGE")
		printDetail(cmd, "📍 Address: %s", addr)
		return nil
	}
}
