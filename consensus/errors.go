// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package consensus

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Madmaxs2/reth/primitives"
)

// Validation failures are typed values rather than opaque strings so callers
// can branch on the kind of mismatch with errors.As. Got is always the value
// recomputed from the receipts, Expected the value the header declared.

// ReceiptsRootMismatchError reports a block body whose receipts hash to a
// different trie root than the header commits to.
type ReceiptsRootMismatchError struct {
	Got      common.Hash
	Expected common.Hash
}

func (e *ReceiptsRootMismatchError) Error() string {
	return fmt.Sprintf("receipts root mismatch: got %v, expected %v", e.Got, e.Expected)
}

// LogsBloomMismatchError reports an aggregate log bloom that differs from the
// header's declared bloom.
type LogsBloomMismatchError struct {
	Got      types.Bloom
	Expected types.Bloom
}

func (e *LogsBloomMismatchError) Error() string {
	return fmt.Sprintf("header bloom mismatch: got %x, expected %x", e.Got, e.Expected)
}

// GasUsedMismatchError reports a header gas-used field that differs from the
// cumulative gas the receipts account for. GasSpentByTx breaks consumption
// down per transaction to help locate the diverging one.
type GasUsedMismatchError struct {
	Got          uint64
	Expected     uint64
	GasSpentByTx []primitives.TxGasUsed
}

func (e *GasUsedMismatchError) Error() string {
	return fmt.Sprintf("block gas used mismatch: got %d, expected %d; gas spent by tx: %v", e.Got, e.Expected, e.GasSpentByTx)
}
