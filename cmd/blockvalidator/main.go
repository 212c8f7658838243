// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/log"
	flag "github.com/spf13/pflag"

	"github.com/Madmaxs2/reth/cmd/util"
	"github.com/Madmaxs2/reth/consensus"
	"github.com/Madmaxs2/reth/primitives"
	"github.com/Madmaxs2/reth/util/colors"
)

type BlockValidatorConfig struct {
	Conf     util.ConfConfig `koanf:"conf"`
	LogLevel string          `koanf:"log-level"`
	LogType  string          `koanf:"log-type"`
	ChainId  uint64          `koanf:"chain-id"`
	Block    string          `koanf:"block"`
}

var DefaultBlockValidatorConfig = BlockValidatorConfig{
	Conf:     util.ConfConfigDefault,
	LogLevel: "INFO",
	LogType:  "plaintext",
	ChainId:  10,
	Block:    "",
}

func addFlags(f *flag.FlagSet) {
	util.ConfConfigAddOptions("conf", f)
	f.String("log-level", DefaultBlockValidatorConfig.LogLevel, "log level, valid values are CRIT, ERROR, WARN, INFO, DEBUG, TRACE")
	f.String("log-type", DefaultBlockValidatorConfig.LogType, "log type (plaintext or json)")
	f.Uint64("chain-id", DefaultBlockValidatorConfig.ChainId, "chain ID of the rollup the block belongs to")
	f.String("block", DefaultBlockValidatorConfig.Block, "JSON file holding the executed block: header, transactions, senders and receipts")
}

func parseConfig(args []string) (*BlockValidatorConfig, error) {
	f := flag.NewFlagSet("blockvalidator", flag.ContinueOnError)
	addFlags(f)

	k, err := util.BeginCommonParse(f, args)
	if err != nil {
		return nil, err
	}
	var config BlockValidatorConfig
	if err := util.EndCommonParse(k, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// blockFixture is the on-disk form of an executed block: the header under
// validation, the block body's transactions, the senders the execution engine
// resolved for them, and the receipts execution produced.
type blockFixture struct {
	Header       *types.Header         `json:"header"`
	Transactions types.Transactions    `json:"transactions"`
	Senders      []common.Address      `json:"senders"`
	Receipts     []*primitives.Receipt `json:"receipts"`
}

func main() {
	if err := validateBlockFile(os.Args[1:]); err != nil {
		log.Crit("blockvalidator failed", "err", err)
	}
}

func validateBlockFile(args []string) error {
	config, err := parseConfig(args)
	if err != nil {
		return err
	}
	if err := util.SetLogger(config.LogLevel, config.LogType); err != nil {
		return err
	}
	if config.Block == "" {
		return errors.New("no block file given, use --block")
	}

	data, err := os.ReadFile(config.Block)
	if err != nil {
		return fmt.Errorf("error reading block file: %w", err)
	}
	var fixture blockFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("error decoding block file: %w", err)
	}
	if fixture.Header == nil {
		return errors.New("block file has no header")
	}

	spec, err := primitives.GetChainSpec(new(big.Int).SetUint64(config.ChainId))
	if err != nil {
		return err
	}
	body := types.Body{Transactions: fixture.Transactions}
	block, err := primitives.NewBlockWithSenders(types.NewBlockWithHeader(fixture.Header).WithBody(body), fixture.Senders)
	if err != nil {
		return err
	}

	log.Info("validating block", "number", block.NumberU64(), "chainId", config.ChainId, "receipts", len(fixture.Receipts))
	if err := consensus.ValidateBlockPostExecution(block, spec, fixture.Receipts); err != nil {
		logVerdict(err)
		os.Exit(1)
	}
	colors.PrintBlue("block ", block.NumberU64(), " valid")
	return nil
}

// logVerdict reports the mismatch kind on its own log line so operators can
// tell a diverging execution from a bad commitment at a glance.
func logVerdict(err error) {
	var rootErr *consensus.ReceiptsRootMismatchError
	var bloomErr *consensus.LogsBloomMismatchError
	var gasErr *consensus.GasUsedMismatchError
	switch {
	case errors.As(err, &rootErr):
		log.Error("receipts root mismatch", "got", rootErr.Got, "expected", rootErr.Expected)
	case errors.As(err, &bloomErr):
		log.Error("logs bloom mismatch", "got", fmt.Sprintf("%x", bloomErr.Got), "expected", fmt.Sprintf("%x", bloomErr.Expected))
	case errors.As(err, &gasErr):
		log.Error("gas used mismatch", "got", gasErr.Got, "expected", gasErr.Expected)
		for _, tx := range gasErr.GasSpentByTx {
			log.Error("gas spent by transaction", "txIndex", tx.TxIndex, "gasUsed", tx.GasUsed)
		}
	default:
		log.Error("block invalid", "err", err)
	}
}
