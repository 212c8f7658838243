// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package primitives

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// BlockWithSenders pairs a block with the sender of each of its transactions,
// resolved once by the execution engine so downstream consumers never recover
// signatures. Senders are indexed identically to the block's transactions.
type BlockWithSenders struct {
	*types.Block
	Senders []common.Address
}

// NewBlockWithSenders wraps a block with its resolved senders, rejecting
// sender lists that do not line up with the transactions.
func NewBlockWithSenders(block *types.Block, senders []common.Address) (*BlockWithSenders, error) {
	if len(senders) != len(block.Transactions()) {
		return nil, fmt.Errorf("got %d senders for %d transactions", len(senders), len(block.Transactions()))
	}
	return &BlockWithSenders{Block: block, Senders: senders}, nil
}
