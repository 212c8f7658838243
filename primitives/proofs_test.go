// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package primitives

import (
	"testing"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Madmaxs2/reth/util/testhelpers"
)

func preCanyonTestSpec() *ChainSpec {
	return &ChainSpec{
		ChainConfig:  preBedrockForks(1337),
		RegolithTime: newUint64(0),
	}
}

func TestReceiptsRootDeterministic(t *testing.T) {
	receipts := WithBlooms([]*Receipt{
		{Success: true, CumulativeGasUsed: 21000, Logs: []*types.Log{testLog(testhelpers.RandomAddress(), testhelpers.RandomHash())}},
		{Type: types.DynamicFeeTxType, Success: true, CumulativeGasUsed: 50000},
	})

	first := ReceiptsRoot(receipts, TestChainSpec, 1)
	second := ReceiptsRoot(receipts, TestChainSpec, 1)
	if first != second {
		t.Errorf("identical inputs produced different roots: %v vs %v", first, second)
	}
	if first == types.EmptyReceiptsHash {
		t.Error("non-empty receipt sequence hashed to the empty root")
	}
}

func TestReceiptsRootOrderDependent(t *testing.T) {
	a := &Receipt{Success: true, CumulativeGasUsed: 21000, Logs: []*types.Log{testLog(testhelpers.RandomAddress())}}
	b := &Receipt{Success: true, CumulativeGasUsed: 42000, Logs: []*types.Log{testLog(testhelpers.RandomAddress())}}

	forward := WithBlooms([]*Receipt{a, b})
	reversed := WithBlooms([]*Receipt{b, a})

	if ReceiptsRoot(forward, TestChainSpec, 1) == ReceiptsRoot(reversed, TestChainSpec, 1) {
		t.Error("permuting receipts must change the root")
	}
	if AggregateBloom(forward) != AggregateBloom(reversed) {
		t.Error("permuting receipts must not change the aggregate bloom")
	}
}

func TestCanyonChangesDepositReceiptEncoding(t *testing.T) {
	nonce := uint64(7)
	version := uint64(1)
	deposit := WithBlooms([]*Receipt{{
		Type:                  DepositTxType,
		Success:               true,
		CumulativeGasUsed:     21000,
		DepositNonce:          &nonce,
		DepositReceiptVersion: &version,
	}})

	preCanyon := ReceiptsRoot(deposit, preCanyonTestSpec(), 1)
	postCanyon := ReceiptsRoot(deposit, TestChainSpec, 1)
	if preCanyon == postCanyon {
		t.Error("Canyon must change the root of a deposit receipt carrying a nonce")
	}

	// Non-deposit receipts encode identically on both sides of the fork.
	plain := WithBlooms([]*Receipt{{Type: types.DynamicFeeTxType, Success: true, CumulativeGasUsed: 21000}})
	if ReceiptsRoot(plain, preCanyonTestSpec(), 1) != ReceiptsRoot(plain, TestChainSpec, 1) {
		t.Error("Canyon must not change the root of non-deposit receipts")
	}
}

func TestTypedReceiptEncodingDiffersFromLegacy(t *testing.T) {
	legacy := WithBlooms([]*Receipt{{Type: types.LegacyTxType, Success: true, CumulativeGasUsed: 21000}})
	typed := WithBlooms([]*Receipt{{Type: types.DynamicFeeTxType, Success: true, CumulativeGasUsed: 21000}})

	if ReceiptsRoot(legacy, TestChainSpec, 1) == ReceiptsRoot(typed, TestChainSpec, 1) {
		t.Error("transaction type must enter the consensus encoding")
	}
}
