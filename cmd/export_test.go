package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportJSONSnapshot(t *testing.T) {
	isolate(t)
	srv := newExplorer(t, map[string]string{
		"/chain/Dogecoin/q/getblockcount": "39405",
		"/chain/Dogecoin/q/getdifficulty": "337.834",
		"/chain/Dogecoin/q/totalbc":       "20348786236.90000153",
		"/chain/Dogecoin/q/transactions":  `[[40000,1388740613,51],[40500,1388773764,122]]`,
		// nethash left unrouted to exercise partial failure
	})
	dir := t.TempDir()

	out, err := executeCommand(t, "export", "--json", "--dir", dir, "--base-url", srv.URL, "-q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := strings.TrimSpace(out)
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, ".json") {
		t.Fatalf("unexpected export path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var snapshot ChainSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("export is not json: %v", err)
	}
	if snapshot.BlockCount != "39405" || snapshot.TotalMined != "20348786236.90000153" {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
	if len(snapshot.Transactions) != 2 || snapshot.Transactions[1].Count != 122 {
		t.Fatalf("unexpected transactions %+v", snapshot.Transactions)
	}
	if msg := snapshot.Errors["nethash"]; msg != "unknown query" {
		t.Fatalf("expected nethash failure recorded, got %q", msg)
	}
}

func TestExportDefaultsToCSV(t *testing.T) {
	isolate(t)
	srv := newExplorer(t, map[string]string{
		"/chain/Dogecoin/q/getblockcount": "39405",
	})
	dir := t.TempDir()

	out, err := executeCommand(t, "export", "--dir", dir, "--base-url", srv.URL, "-q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := strings.TrimSpace(out)
	if !strings.HasSuffix(path, ".csv") {
		t.Fatalf("expected csv export, got %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "Dogecoin,Block Height,39405") {
		t.Fatalf("unexpected csv %q", data)
	}
}
