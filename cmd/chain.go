package cmd

import (
	"strconv"

	"github.com/chinmay1088/dogechain/api"
	"github.com/spf13/cobra"
)

var blockCountCmd = &cobra.Command{
	Use:     "blockcount",
	Aliases: []string{"height"},
	Short:   "Show the current block height",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := query(cmd, api.EndpointBlockCount, "")
		if err != nil {
			return err
		}
		height, err := api.ParseBlockCount(body)
		if rawFlag || err != nil {
			printRaw(cmd, body)
			return nil
		}
		printValue(cmd, "📦 Block height", strconv.FormatInt(height, 10))
		return nil
	},
}

var difficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "Show the difficulty of the last block",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := query(cmd, api.EndpointDifficulty, "")
		if err != nil {
			return err
		}
		difficulty, err := api.ParseAmount(body)
		if rawFlag || err != nil {
			printRaw(cmd, body)
			return nil
		}
		printValue(cmd, "⛏️  Difficulty", difficulty.String())
		return nil
	},
}

var totalBCCmd = &cobra.Command{
	Use:     "totalbc",
	Aliases: []string{"supply"},
	Short:   "Show the total amount of DOGE mined",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := query(cmd, api.EndpointTotalBC, "")
		if err != nil {
			return err
		}
		total, err := api.ParseAmount(body)
		if rawFlag || err != nil {
			printRaw(cmd, body)
			return nil
		}
		printValue(cmd, "🪙 Total mined", total.StringFixed(2)+" DOGE")
		return nil
	},
}
