package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/chinmay1088/dogechain/api"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04:05"

var limitFlag int

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Show transaction counts of recent blocks",
	Long: `Show how many transactions recent blocks carried.

Examples:
  dogechain transactions            # Last 10 rows
  dogechain transactions --limit 0  # Every row
  dogechain transactions --raw      # JSON as returned by the explorer`,
	Args: cobra.NoArgs,
	RunE: runTransactions,
}

var netHashCmd = &cobra.Command{
	Use:   "nethash",
	Short: "Show difficulty and network hash rate statistics",
	Args:  cobra.NoArgs,
	RunE:  runNetHash,
}

func init() {
	for _, c := range []*cobra.Command{transactionsCmd, netHashCmd} {
		c.Flags().IntVarP(&limitFlag, "limit", "l", 10, "rows to show, newest last (0 for all)")
	}
}

func runTransactions(cmd *cobra.Command, args []string) error {
	if limitFlag < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	body, err := query(cmd, api.EndpointTransactions, "")
	if err != nil {
		return err
	}
	if rawFlag {
		printRaw(cmd, body)
		return nil
	}

	rows, err := api.ParseTransactions(body)
	if err != nil {
		return err
	}
	rows = tail(rows, limitFlag)

	if !quietFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "📊 Transactions per block (%d rows)\n\n", len(rows))
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BLOCK\tTIME (UTC)\tTRANSACTIONS")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d\n", r.Block, r.Time.Format(timeLayout), r.Count)
	}
	return w.Flush()
}

func runNetHash(cmd *cobra.Command, args []string) error {
	if limitFlag < 0 {
		return fmt.Errorf("limit must not be negative")
	}

	body, err := query(cmd, api.EndpointNetHash, "")
	if err != nil {
		return err
	}
	if rawFlag {
		printRaw(cmd, body)
		return nil
	}

	samples, err := api.ParseNetHash(body)
	if err != nil {
		return err
	}
	samples = tail(samples, limitFlag)

	if !quietFlag {
		fmt.Fprintf(cmd.OutOrStdout(), "⛏️  Network statistics (%d samples)\n\n", len(samples))
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BLOCK\tTIME (UTC)\tDIFFICULTY\tAVG INTERVAL\tHASH RATE")
	for _, s := range samples {
		fmt.Fprintf(w, "%d\t%s\t%s\t%ds\t%s\n",
			s.Block, s.Time.Format(timeLayout), s.Difficulty.String(), s.AvgIntervalSinceLast, formatHashRate(s.NetHashPerSecond))
	}
	return w.Flush()
}

func tail[T any](rows []T, n int) []T {
	if n == 0 || n >= len(rows) {
		return rows
	}
	return rows[len(rows)-n:]
}

var hashRateUnits = []string{"H/s", "kH/s", "MH/s", "GH/s", "TH/s", "PH/s", "EH/s"}

// formatHashRate scales hashes per second to the largest unit below 1000.
func formatHashRate(rate decimal.Decimal) string {
	thousand := decimal.NewFromInt(1000)
	unit := 0
	for rate.GreaterThanOrEqual(thousand) && unit < len(hashRateUnits)-1 {
		rate = rate.Div(thousand)
		unit++
	}
	return rate.StringFixed(2) + " " + hashRateUnits[unit]
}
