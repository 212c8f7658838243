// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package primitives

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/go-cmp/cmp"

	"github.com/Madmaxs2/reth/util/testhelpers"
)

func testLog(addr common.Address, topics ...common.Hash) *types.Log {
	return &types.Log{Address: addr, Topics: topics}
}

func TestReceiptBloomContainsLogInputs(t *testing.T) {
	addr := testhelpers.RandomAddress()
	topic := testhelpers.RandomHash()
	receipt := &Receipt{
		Success:           true,
		CumulativeGasUsed: 21000,
		Logs:              []*types.Log{testLog(addr, topic)},
	}

	bloom := receipt.Bloom()
	if !bloom.Test(addr.Bytes()) {
		t.Error("bloom does not match the emitting address")
	}
	if !bloom.Test(topic.Bytes()) {
		t.Error("bloom does not match the log topic")
	}
	if other := testhelpers.RandomHash(); bloom.Test(other.Bytes()) {
		t.Error("bloom matched a topic that was never logged")
	}
}

func TestReceiptBloomEmptyLogs(t *testing.T) {
	receipt := &Receipt{Success: true, CumulativeGasUsed: 21000}
	if receipt.Bloom() != (types.Bloom{}) {
		t.Error("receipt without logs must derive the zero bloom")
	}
}

func TestAggregateBloomOrderIndependent(t *testing.T) {
	receipts := []*Receipt{
		{Success: true, CumulativeGasUsed: 21000, Logs: []*types.Log{testLog(testhelpers.RandomAddress(), testhelpers.RandomHash())}},
		{Success: false, CumulativeGasUsed: 42000, Logs: []*types.Log{testLog(testhelpers.RandomAddress())}},
		{Success: true, CumulativeGasUsed: 63000, Logs: []*types.Log{testLog(testhelpers.RandomAddress(), testhelpers.RandomHash(), testhelpers.RandomHash())}},
	}
	permuted := []*Receipt{receipts[2], receipts[0], receipts[1]}

	bloom := AggregateBloom(WithBlooms(receipts))
	if bloom != AggregateBloom(WithBlooms(permuted)) {
		t.Error("aggregate bloom depends on receipt order")
	}

	// Every per-receipt bloom must already be absorbed into the aggregate.
	for i, r := range WithBlooms(receipts) {
		if orBlooms(bloom, r.Bloom) != bloom {
			t.Errorf("receipt %d bloom not contained in the aggregate", i)
		}
	}
}

func TestAggregateBloomEmpty(t *testing.T) {
	if AggregateBloom(nil) != (types.Bloom{}) {
		t.Error("empty receipt sequence must aggregate to the zero bloom")
	}
}

func TestGasSpentByTransactions(t *testing.T) {
	receipts := []*Receipt{
		{Success: true, CumulativeGasUsed: 21000},
		{Success: true, CumulativeGasUsed: 63000},
		{Success: false, CumulativeGasUsed: 70000},
	}
	want := []TxGasUsed{
		{TxIndex: 0, GasUsed: 21000},
		{TxIndex: 1, GasUsed: 42000},
		{TxIndex: 2, GasUsed: 7000},
	}
	if diff := cmp.Diff(want, GasSpentByTransactions(receipts)); diff != "" {
		Fail(t, "unexpected gas breakdown:", diff)
	}

	if len(GasSpentByTransactions(nil)) != 0 {
		t.Error("empty receipt sequence must produce an empty breakdown")
	}
}

func TestStatusEncoding(t *testing.T) {
	success := &Receipt{Success: true}
	if len(success.statusEncoding()) != 1 || success.statusEncoding()[0] != 0x01 {
		t.Error("successful receipt must encode status 0x01")
	}
	failed := &Receipt{Success: false}
	if len(failed.statusEncoding()) != 0 {
		t.Error("failed receipt must encode the empty status")
	}
}

func Require(t *testing.T, err error, printables ...interface{}) {
	t.Helper()
	testhelpers.RequireImpl(t, err, printables...)
}

func Fail(t *testing.T, printables ...interface{}) {
	t.Helper()
	testhelpers.FailImpl(t, printables...)
}
