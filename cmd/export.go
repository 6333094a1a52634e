package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/chinmay1088/dogechain/api"
	"github.com/chinmay1088/dogechain/config"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a snapshot of chain statistics",
	Long: `Export a snapshot of the chain wide statistics.

File formats:
  --csv        Export to CSV format (default)
  --json       Export to JSON format
  --txt        Export to txt format

Data exported:
  • Block height, difficulty and total mined
  • Transaction counts of recent blocks
  • Network hash rate samples

Examples:
  dogechain export                    # Export to CSV (default)
  dogechain export --json             # Export to JSON
  dogechain export --csv --json       # Export to both formats
  dogechain export --dir ./snapshots  # Choose the output directory`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	csvFlag   bool
	jsonFlag  bool
	txtFlag   bool
	exportDir string
)

func init() {
	exportCmd.Flags().BoolVar(&csvFlag, "csv", false, "Export to CSV format")
	exportCmd.Flags().BoolVar(&jsonFlag, "json", false, "Export to JSON format")
	exportCmd.Flags().BoolVar(&txtFlag, "txt", false, "Export to txt format")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (default ~/.dogechain/exports)")
}

// ChainSnapshot is the exported data.
type ChainSnapshot struct {
	ExportDate   string                  `json:"export_date"`
	BaseURL      string                  `json:"base_url"`
	Chain        string                  `json:"chain"`
	BlockCount   string                  `json:"block_count"`
	Difficulty   string                  `json:"difficulty"`
	TotalMined   string                  `json:"total_mined"`
	Transactions []api.BlockTransactions `json:"transactions,omitempty"`
	NetHash      []api.NetHashSample     `json:"nethash,omitempty"`
	Errors       map[string]string       `json:"errors,omitempty"`
}

var snapshotEndpoints = []api.Endpoint{
	api.EndpointBlockCount,
	api.EndpointDifficulty,
	api.EndpointTotalBC,
	api.EndpointTransactions,
	api.EndpointNetHash,
}

func runExport(cmd *cobra.Command, args []string) error {
	if !csvFlag && !jsonFlag && !txtFlag {
		csvFlag = true
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(statusWriter(cmd)),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/3][reset] Collecting data..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	snapshot := collectSnapshot(bar)

	_ = bar.Set(70)
	bar.Describe("[cyan][2/3][reset] Preparing export files...")
	dir, err := prepareExportDirectory()
	if err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}

	_ = bar.Set(85)
	bar.Describe("[cyan][3/3][reset] Writing export files...")
	files, err := writeExportFiles(snapshot, dir, bar)
	if err != nil {
		return fmt.Errorf("failed to write export files: %w", err)
	}

	_ = bar.Set(100)
	bar.Describe("[green][✓][reset] Export completed!")
	_ = bar.Finish()

	out := cmd.OutOrStdout()
	if quietFlag {
		for _, f := range files {
			fmt.Fprintln(out, f)
		}
		return nil
	}
	fmt.Fprintln(out, "📁 Export completed successfully!")
	fmt.Fprintf(out, "📍 Files saved to: %s\n", dir)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "📊 Export Summary:")
	fmt.Fprintf(out, "   Block height: %s\n", orDash(snapshot.BlockCount))
	fmt.Fprintf(out, "   Transaction rows: %d\n", len(snapshot.Transactions))
	fmt.Fprintf(out, "   Hash rate samples: %d\n", len(snapshot.NetHash))
	for name, msg := range snapshot.Errors {
		fmt.Fprintf(out, "   ⚠️  %s: %s\n", name, msg)
	}
	return nil
}

// collectSnapshot fires every chain wide query at once. A failed query is
// recorded in Errors; the rest of the snapshot is still exported.
func collectSnapshot(bar *progressbar.ProgressBar) *ChainSnapshot {
	snapshot := &ChainSnapshot{
		ExportDate: time.Now().Format(timeLayout),
		BaseURL:    client.BaseURL(),
		Chain:      client.Chain(),
		Errors:     map[string]string{},
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		step = 60 / len(snapshotEndpoints)
	)
	for _, ep := range snapshotEndpoints {
		ep := ep
		wg.Add(1)
		client.Go(ep, "", func(err error, body string) {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn("export query failed", zap.String("endpoint", ep.Name), zap.Error(err))
				snapshot.Errors[ep.Name] = strings.TrimSpace(err.Error())
			} else if err := snapshot.apply(ep, body); err != nil {
				snapshot.Errors[ep.Name] = err.Error()
			}
			_ = bar.Add(step)
		})
	}
	wg.Wait()

	if len(snapshot.Errors) == 0 {
		snapshot.Errors = nil
	}
	return snapshot
}

func (s *ChainSnapshot) apply(ep api.Endpoint, body string) error {
	var err error
	switch ep {
	case api.EndpointBlockCount:
		s.BlockCount = strings.TrimSpace(body)
	case api.EndpointDifficulty:
		s.Difficulty = strings.TrimSpace(body)
	case api.EndpointTotalBC:
		s.TotalMined = strings.TrimSpace(body)
	case api.EndpointTransactions:
		s.Transactions, err = api.ParseTransactions(body)
	case api.EndpointNetHash:
		s.NetHash, err = api.ParseNetHash(body)
	}
	return err
}

func prepareExportDirectory() (string, error) {
	dir := exportDir
	if dir == "" {
		base, err := config.Dir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "exports")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

func writeExportFiles(snapshot *ChainSnapshot, dir string, bar *progressbar.ProgressBar) ([]string, error) {
	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(dir, fmt.Sprintf("dogechain_%s_%s", strings.ToLower(snapshot.Chain), timestamp))

	var files []string

	// write csv files
	if csvFlag {
		if err := writeCSVFile(base+".csv", snapshot); err != nil {
			return nil, fmt.Errorf("failed to write CSV export: %w", err)
		}
		files = append(files, base+".csv")
		_ = bar.Add(5)
	}

	// write json files
	if jsonFlag {
		if err := writeJSONFile(base+".json", snapshot); err != nil {
			return nil, fmt.Errorf("failed to write JSON export: %w", err)
		}
		files = append(files, base+".json")
		_ = bar.Add(5)
	}

	// write txt files
	if txtFlag {
		if err := writeTXTFile(base+".txt", snapshot); err != nil {
			return nil, fmt.Errorf("failed to write txt export: %w", err)
		}
		files = append(files, base+".txt")
		_ = bar.Add(5)
	}

	return files, nil
}

func writeCSVFile(filename string, snapshot *ChainSnapshot) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{
		{"Chain", "Data Type", "Details"},
		{snapshot.Chain, "Block Height", snapshot.BlockCount},
		{snapshot.Chain, "Difficulty", snapshot.Difficulty},
		{snapshot.Chain, "Total Mined", snapshot.TotalMined},
	}
	for _, tx := range snapshot.Transactions {
		records = append(records, []string{
			snapshot.Chain,
			"Transactions",
			fmt.Sprintf("Block: %d | Time: %s | Count: %d", tx.Block, tx.Time.Format(timeLayout), tx.Count),
		})
	}
	for _, s := range snapshot.NetHash {
		records = append(records, []string{
			snapshot.Chain,
			"Network",
			fmt.Sprintf("Block: %d | Time: %s | Difficulty: %s | Hash rate: %s",
				s.Block, s.Time.Format(timeLayout), s.Difficulty.String(), formatHashRate(s.NetHashPerSecond)),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return file.Close()
}

func writeJSONFile(filename string, snapshot *ChainSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}

func writeTXTFile(filename string, snapshot *ChainSnapshot) error {
	var content strings.Builder
	content.WriteString("DOGECHAIN SNAPSHOT\n")
	content.WriteString("==================\n\n")
	content.WriteString(fmt.Sprintf("Export Date: %s\n", snapshot.ExportDate))
	content.WriteString(fmt.Sprintf("Explorer: %s\n", snapshot.BaseURL))
	content.WriteString(fmt.Sprintf("Chain: %s\n\n", snapshot.Chain))
	content.WriteString(fmt.Sprintf("Block height: %s\n", orDash(snapshot.BlockCount)))
	content.WriteString(fmt.Sprintf("Difficulty: %s\n", orDash(snapshot.Difficulty)))
	content.WriteString(fmt.Sprintf("Total mined: %s\n", orDash(snapshot.TotalMined)))

	if len(snapshot.Transactions) > 0 {
		content.WriteString(fmt.Sprintf("\nTransactions (%d):\n", len(snapshot.Transactions)))
		for i, tx := range snapshot.Transactions {
			content.WriteString(fmt.Sprintf("  %d. Block %d | %s | %d txs\n",
				i+1, tx.Block, tx.Time.Format(timeLayout), tx.Count))
		}
	}

	if len(snapshot.NetHash) > 0 {
		content.WriteString(fmt.Sprintf("\nNetwork (%d):\n", len(snapshot.NetHash)))
		for i, s := range snapshot.NetHash {
			content.WriteString(fmt.Sprintf("  %d. Block %d | %s | difficulty %s | %s\n",
				i+1, s.Block, s.Time.Format(timeLayout), s.Difficulty.String(), formatHashRate(s.NetHashPerSecond)))
		}
	}

	for name, msg := range snapshot.Errors {
		content.WriteString(fmt.Sprintf("\nError (%s): %s\n", name, msg))
	}

	return os.WriteFile(filename, []byte(content.String()), 0600)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
