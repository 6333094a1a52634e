package api

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The client hands back bodies untouched; these helpers are for callers that
// want typed values.

const (
	netHashFields      = 8
	transactionsFields = 3
)

// ParseAmount parses amount bodies (balance, received, sent, totalbc,
// difficulty).
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", raw, err)
	}
	return d, nil
}

// ParseBlockCount parses the getblockcount body.
func ParseBlockCount(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block count %q: %w", raw, err)
	}
	return n, nil
}

// ParseDecodedAddress parses a decode_address body of the form "1e:HEX".
func ParseDecodedAddress(raw string) (byte, []byte, error) {
	version, hash, ok := strings.Cut(strings.Trim(strings.TrimSpace(raw), `"`), ":")
	if !ok {
		return 0, nil, fmt.Errorf("malformed decoded address %q", raw)
	}
	v, err := hex.DecodeString(version)
	if err != nil || len(v) != 1 {
		return 0, nil, fmt.Errorf("malformed version byte %q", version)
	}
	h, err := hex.DecodeString(hash)
	if err != nil {
		return 0, nil, fmt.Errorf("malformed hash %q: %w", hash, err)
	}
	return v[0], h, nil
}

// ParseNetHash parses the nethash?format=json body.
func ParseNetHash(raw string) ([]NetHashSample, error) {
	rows, err := decodeRows(raw, netHashFields)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nethash: %w", err)
	}

	samples := make([]NetHashSample, 0, len(rows))
	for i, row := range rows {
		var s NetHashSample
		ints, err := intFields(row, 0, 1, 6)
		if err != nil {
			return nil, fmt.Errorf("nethash row %d: %w", i, err)
		}
		decs, err := decimalFields(row, 2, 3, 4, 5, 7)
		if err != nil {
			return nil, fmt.Errorf("nethash row %d: %w", i, err)
		}
		s.Block = ints[0]
		s.Time = time.Unix(ints[1], 0).UTC()
		s.AvgIntervalSinceLast = ints[2]
		s.Target = decs[0]
		s.AvgTargetSinceLast = decs[1]
		s.Difficulty = decs[2]
		s.HashesToWin = decs[3]
		s.NetHashPerSecond = decs[4]
		samples = append(samples, s)
	}
	return samples, nil
}

// ParseTransactions parses the transactions body.
func ParseTransactions(raw string) ([]BlockTransactions, error) {
	rows, err := decodeRows(raw, transactionsFields)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transactions: %w", err)
	}

	counts := make([]BlockTransactions, 0, len(rows))
	for i, row := range rows {
		ints, err := intFields(row, 0, 1, 2)
		if err != nil {
			return nil, fmt.Errorf("transactions row %d: %w", i, err)
		}
		counts = append(counts, BlockTransactions{
			Block: ints[0],
			Time:  time.Unix(ints[1], 0).UTC(),
			Count: ints[2],
		})
	}
	return counts, nil
}

// decodeRows keeps numbers as json.Number; targets overflow float64.
func decodeRows(raw string, width int) ([][]json.Number, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var rows [][]json.Number
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d fields, want %d", i, len(row), width)
		}
	}
	return rows, nil
}

func intFields(row []json.Number, idx ...int) ([]int64, error) {
	out := make([]int64, len(idx))
	for i, j := range idx {
		n, err := row[j].Int64()
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", j, err)
		}
		out[i] = n
	}
	return out, nil
}

func decimalFields(row []json.Number, idx ...int) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(idx))
	for i, j := range idx {
		d, err := decimal.NewFromString(row[j].String())
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", j, err)
		}
		out[i] = d
	}
	return out, nil
}
