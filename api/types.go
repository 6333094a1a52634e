package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetHashSample is one row of the nethash statistics.
type NetHashSample struct {
	Block                int64           `json:"block"`
	Time                 time.Time       `json:"time"`
	Target               decimal.Decimal `json:"target"`
	AvgTargetSinceLast   decimal.Decimal `json:"avg_target_since_last"`
	Difficulty           decimal.Decimal `json:"difficulty"`
	HashesToWin          decimal.Decimal `json:"hashes_to_win"`
	AvgIntervalSinceLast int64           `json:"avg_interval_since_last"` // seconds
	NetHashPerSecond     decimal.Decimal `json:"net_hash_per_second"`
}

// BlockTransactions is the transaction count of one block.
type BlockTransactions struct {
	Block int64     `json:"block"`
	Time  time.Time `json:"time"`
	Count int64     `json:"count"`
}
