// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package primitives

import (
	"github.com/ethereum/go-ethereum/core/types"
)

// DepositTxType is the EIP-2718 type of rollup deposit transactions, which
// carry L1-originated messages and have no L2 signature.
const DepositTxType = 0x7E

// Receipt holds the consensus fields of one transaction's execution outcome.
// Receipts are produced by the execution engine in transaction order and are
// never mutated here.
type Receipt struct {
	Type              uint8        `json:"type"`
	Success           bool         `json:"success"`
	CumulativeGasUsed uint64       `json:"cumulativeGasUsed"`
	Logs              []*types.Log `json:"logs"`

	// Deposit receipts additionally commit to the account nonce the deposit
	// consumed. The version field exists from Canyon onwards.
	DepositNonce          *uint64 `json:"depositNonce,omitempty"`
	DepositReceiptVersion *uint64 `json:"depositReceiptVersion,omitempty"`
}

// Bloom derives the receipt's 2048-bit log bloom from its logs, each log
// contributing its emitting address and every topic.
func (r *Receipt) Bloom() types.Bloom {
	return types.BytesToBloom(types.LogsBloom(r.Logs))
}

// statusEncoding returns the post-EIP-658 encoding of the success flag.
func (r *Receipt) statusEncoding() []byte {
	if r.Success {
		return []byte{0x01}
	}
	return []byte{}
}

// ReceiptWithBloom pairs a receipt with its derived bloom, the form receipts
// take in the consensus encoding.
type ReceiptWithBloom struct {
	Receipt *Receipt
	Bloom   types.Bloom
}

// WithBloom derives the receipt's bloom and bundles the two together.
func (r *Receipt) WithBloom() ReceiptWithBloom {
	return ReceiptWithBloom{Receipt: r, Bloom: r.Bloom()}
}

// WithBlooms derives the bloom of every receipt, preserving order.
func WithBlooms(receipts []*Receipt) []ReceiptWithBloom {
	withBlooms := make([]ReceiptWithBloom, len(receipts))
	for i, r := range receipts {
		withBlooms[i] = r.WithBloom()
	}
	return withBlooms
}

// orBlooms is the combining operator of the aggregate bloom fold. OR is
// commutative and associative, so the aggregate does not depend on receipt
// order even though the fold runs in sequence order.
func orBlooms(a, b types.Bloom) types.Bloom {
	for i := range a {
		a[i] |= b[i]
	}
	return a
}

// AggregateBloom folds the per-receipt blooms into the block's header bloom,
// starting from the zero bloom.
func AggregateBloom(receipts []ReceiptWithBloom) types.Bloom {
	bloom := types.Bloom{}
	for _, r := range receipts {
		bloom = orBlooms(bloom, r.Bloom)
	}
	return bloom
}

// TxGasUsed is one transaction's share of the block's gas consumption.
type TxGasUsed struct {
	TxIndex uint64 `json:"txIndex"`
	GasUsed uint64 `json:"gasUsed"`
}

// GasSpentByTransactions recovers each transaction's own gas usage by
// differencing consecutive cumulative counters.
func GasSpentByTransactions(receipts []*Receipt) []TxGasUsed {
	spent := make([]TxGasUsed, 0, len(receipts))
	var prev uint64
	for i, r := range receipts {
		spent = append(spent, TxGasUsed{
			TxIndex: uint64(i),
			GasUsed: r.CumulativeGasUsed - prev,
		})
		prev = r.CumulativeGasUsed
	}
	return spent
}
