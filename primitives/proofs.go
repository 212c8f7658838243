// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package primitives

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethereum/go-ethereum/trie"
)

// receiptRLP is the consensus encoding of a receipt.
type receiptRLP struct {
	PostStateOrStatus []byte
	CumulativeGasUsed uint64
	Bloom             types.Bloom
	Logs              []*types.Log
}

// depositReceiptRLP is the Canyon consensus encoding of a deposit receipt,
// which additionally commits to the deposit nonce and receipt version.
type depositReceiptRLP struct {
	PostStateOrStatus     []byte
	CumulativeGasUsed     uint64
	Bloom                 types.Bloom
	Logs                  []*types.Log
	DepositNonce          *uint64 `rlp:"optional"`
	DepositReceiptVersion *uint64 `rlp:"optional"`
}

// derivableReceipts adapts a receipt sequence to types.DerivableList so the
// root can be derived with geth's stack trie. The encoding rule is fixed when
// the list is built, keeping per-receipt encoding free of fork logic.
type derivableReceipts struct {
	receipts []ReceiptWithBloom
	canyon   bool
}

func (rs derivableReceipts) Len() int { return len(rs.receipts) }

// EncodeIndex writes the canonical consensus encoding of the i'th receipt:
// a bare RLP list for legacy receipts, a type-prefixed payload for EIP-2718
// typed receipts. Before Canyon the deposit nonce never enters the encoding,
// matching the Regolith rule that nonces are stripped from deposit receipts.
func (rs derivableReceipts) EncodeIndex(i int, w *bytes.Buffer) {
	r := rs.receipts[i].Receipt
	data := receiptRLP{r.statusEncoding(), r.CumulativeGasUsed, rs.receipts[i].Bloom, r.Logs}
	if r.Type == types.LegacyTxType {
		rlp.Encode(w, &data)
		return
	}
	w.WriteByte(r.Type)
	if rs.canyon && r.Type == DepositTxType {
		rlp.Encode(w, &depositReceiptRLP{
			PostStateOrStatus:     data.PostStateOrStatus,
			CumulativeGasUsed:     data.CumulativeGasUsed,
			Bloom:                 data.Bloom,
			Logs:                  data.Logs,
			DepositNonce:          r.DepositNonce,
			DepositReceiptVersion: r.DepositReceiptVersion,
		})
		return
	}
	rlp.Encode(w, &data)
}

// ReceiptsRoot computes the receipts trie root committed to in the block
// header. The root is a pure function of the ordered receipts, the chain
// spec and the block timestamp: the timestamp selects the deposit receipt
// encoding once Canyon is active.
func ReceiptsRoot(receipts []ReceiptWithBloom, spec *ChainSpec, timestamp uint64) common.Hash {
	list := derivableReceipts{receipts: receipts, canyon: spec.IsCanyon(timestamp)}
	return types.DeriveSha(list, trie.NewStackTrie(nil))
}
