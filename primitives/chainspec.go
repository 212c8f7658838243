// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package primitives

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// ChainSpec is a rollup chain's fork schedule: the L1-inherited forks
// activated by block height via the embedded geth config, plus the rollup's
// own timestamp-activated upgrades.
type ChainSpec struct {
	*params.ChainConfig

	// RegolithTime is the activation timestamp of the Regolith upgrade,
	// which (among other things) stripped deposit nonces from receipt
	// commitments. Nil means never.
	RegolithTime *uint64 `json:"regolithTime,omitempty"`

	// CanyonTime is the activation timestamp of the Canyon upgrade, from
	// which deposit receipts commit to their nonce and version. Nil means
	// never.
	CanyonTime *uint64 `json:"canyonTime,omitempty"`
}

// IsRegolith reports whether Regolith is active at the given timestamp.
func (c *ChainSpec) IsRegolith(timestamp uint64) bool {
	return isTimestampForked(c.RegolithTime, timestamp)
}

// IsCanyon reports whether Canyon is active at the given timestamp.
func (c *ChainSpec) IsCanyon(timestamp uint64) bool {
	return isTimestampForked(c.CanyonTime, timestamp)
}

func isTimestampForked(fork *uint64, timestamp uint64) bool {
	if fork == nil {
		return false
	}
	return *fork <= timestamp
}

func newUint64(v uint64) *uint64 { return &v }

// preBedrockForks is the ladder of L1 forks every supported rollup activates
// at genesis.
func preBedrockForks(chainID int64) *params.ChainConfig {
	return &params.ChainConfig{
		ChainID:             big.NewInt(chainID),
		HomesteadBlock:      big.NewInt(0),
		EIP150Block:         big.NewInt(0),
		EIP155Block:         big.NewInt(0),
		EIP158Block:         big.NewInt(0),
		ByzantiumBlock:      big.NewInt(0),
		ConstantinopleBlock: big.NewInt(0),
		PetersburgBlock:     big.NewInt(0),
		IstanbulBlock:       big.NewInt(0),
		MuirGlacierBlock:    big.NewInt(0),
		BerlinBlock:         big.NewInt(0),
		LondonBlock:         big.NewInt(0),
	}
}

var (
	// OPMainnetChainSpec is Optimism mainnet.
	OPMainnetChainSpec = &ChainSpec{
		ChainConfig:  preBedrockForks(10),
		RegolithTime: newUint64(0),
		CanyonTime:   newUint64(1704992401),
	}

	// BaseMainnetChainSpec is Base mainnet.
	BaseMainnetChainSpec = &ChainSpec{
		ChainConfig:  preBedrockForks(8453),
		RegolithTime: newUint64(0),
		CanyonTime:   newUint64(1704992401),
	}

	// TestChainSpec activates every fork at genesis.
	TestChainSpec = &ChainSpec{
		ChainConfig:  preBedrockForks(1337),
		RegolithTime: newUint64(0),
		CanyonTime:   newUint64(0),
	}
)

var supportedChainSpecs = []*ChainSpec{
	OPMainnetChainSpec,
	BaseMainnetChainSpec,
	TestChainSpec,
}

// GetChainSpec looks up the spec of a supported rollup chain by chain ID.
func GetChainSpec(chainID *big.Int) (*ChainSpec, error) {
	for _, spec := range supportedChainSpecs {
		if spec.ChainID.Cmp(chainID) == 0 {
			return spec, nil
		}
	}
	return nil, fmt.Errorf("unsupported rollup chain ID %v", chainID)
}
