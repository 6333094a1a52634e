package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chinmay1088/dogechain/api"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const spinnerInterval = 100 * time.Millisecond

type queryResult struct {
	body string
	err  error
}

// query runs ep through the client's completion-handler API and spins on
// stderr while the request is in flight.
func query(cmd *cobra.Command, ep api.Endpoint, param string) (string, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	done := make(chan queryResult, 1)
	client.Go(ep, param, func(err error, body string) {
		done <- queryResult{body: body, err: err}
	})

	spinner := newSpinner(cmd, fmt.Sprintf("[cyan]Querying %s...[reset]", ep.Name))
	defer spinner.Clear()

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for {
		select {
		case res := <-done:
			if res.err != nil {
				return "", describeError(ep, res.err)
			}
			return res.body, nil
		case <-ticker.C:
			_ = spinner.Add(1)
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

func describeError(ep api.Endpoint, err error) error {
	var invalid *api.ValidationError
	if errors.As(err, &invalid) {
		return err
	}
	var remote *api.RemoteError
	if errors.As(err, &remote) {
		return fmt.Errorf("%s rejected by explorer (%s)", ep.Name, remote.String())
	}
	return fmt.Errorf("failed to query %s: %w", ep.Name, err)
}

// newSpinner draws only when stderr is a terminal.
func newSpinner(cmd *cobra.Command, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(statusWriter(cmd)),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
	)
}

func statusWriter(cmd *cobra.Command) io.Writer {
	w := cmd.ErrOrStderr()
	if quietFlag || !isTerminal(w) {
		return io.Discard
	}
	return w
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// printRaw writes body unchanged, adding a final newline if it has none.
func printRaw(cmd *cobra.Command, body string) {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, body)
	if !strings.HasSuffix(body, "\n") {
		fmt.Fprintln(out)
	}
}

// printValue prints "label: value", or only the value with --quiet.
func printValue(cmd *cobra.Command, label, value string) {
	if quietFlag {
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", label, color.GreenString(value))
}

func printDetail(cmd *cobra.Command, format string, a ...any) {
	if quietFlag {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "   "+format+"\n", a...)
}

// missing mirrors the client's validation for offline commands.
func missing(ep api.Endpoint) error {
	return &api.ValidationError{Message: ep.Missing}
}

func trimQuotes(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
