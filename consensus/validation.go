// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package consensus

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Madmaxs2/reth/primitives"
)

// ValidateBlockPostExecution checks a block's declared execution results
// against the receipts its execution actually produced:
//
//   - the receipts root and logs bloom in the header against the block body
//   - the gas used in the header against the receipts' cumulative counter
//
// Inputs are borrowed read-only; receipts must be finalized and ordered like
// the block's transactions. The first failing check aborts the rest, so a
// block with several defects reports only the earliest-detected one.
func ValidateBlockPostExecution(block *primitives.BlockWithSenders, spec *primitives.ChainSpec, receipts []*primitives.Receipt) error {
	// Before Byzantium, receipts committed to intermediate state roots
	// instead of a success flag (EIP-658), a scheme no longer checked, so
	// the root and bloom verification only applies once the fork is active.
	if spec.IsByzantium(block.Number()) {
		err := verifyReceipts(block.ReceiptHash(), block.Bloom(), receipts, spec, block.Time())
		if err != nil {
			return err
		}
	}

	// The last receipt's cumulative counter is the whole block's usage; a
	// block with no transactions must declare zero gas used.
	var cumulativeGasUsed uint64
	if len(receipts) > 0 {
		cumulativeGasUsed = receipts[len(receipts)-1].CumulativeGasUsed
	}
	if block.GasUsed() != cumulativeGasUsed {
		return &GasUsedMismatchError{
			Got:          cumulativeGasUsed,
			Expected:     block.GasUsed(),
			GasSpentByTx: primitives.GasSpentByTransactions(receipts),
		}
	}
	return nil
}

// verifyReceipts recomputes the receipts root and aggregate bloom from the
// receipt sequence and compares each against the header-declared value,
// reporting the two mismatches distinctly: a bad root and a bad bloom point
// at different upstream bugs.
func verifyReceipts(expectedRoot common.Hash, expectedBloom types.Bloom, receipts []*primitives.Receipt, spec *primitives.ChainSpec, timestamp uint64) error {
	withBlooms := primitives.WithBlooms(receipts)

	root := primitives.ReceiptsRoot(withBlooms, spec, timestamp)
	if root != expectedRoot {
		return &ReceiptsRootMismatchError{Got: root, Expected: expectedRoot}
	}

	bloom := primitives.AggregateBloom(withBlooms)
	if bloom != expectedBloom {
		return &LogsBloomMismatchError{Got: bloom, Expected: expectedBloom}
	}
	return nil
}
