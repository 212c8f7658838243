// Copyright 2025-2026, the go-reth authors.
// For license information, see https://github.com/Madmaxs2/reth/blob/master/LICENSE

package util

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"
)

type ConfConfig struct {
	File      string `koanf:"file"`
	EnvPrefix string `koanf:"env-prefix"`
}

var ConfConfigDefault = ConfConfig{
	File:      "",
	EnvPrefix: "",
}

func ConfConfigAddOptions(prefix string, f *flag.FlagSet) {
	f.String(prefix+".file", ConfConfigDefault.File, "name of JSON configuration file")
	f.String(prefix+".env-prefix", ConfConfigDefault.EnvPrefix, "environment variables with given prefix will be loaded as configuration values")
}

// BeginCommonParse parses the flag set, then merges in the optional JSON
// configuration file and prefixed environment variables. Values set on the
// command line win over both.
func BeginCommonParse(f *flag.FlagSet, args []string) (*koanf.Koanf, error) {
	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if f.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", f.Args())
	}

	k := koanf.New(".")
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("error loading command line flags: %w", err)
	}

	if path := k.String("conf.file"); path != "" {
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return nil, fmt.Errorf("error loading configuration file %s: %w", path, err)
		}
	}

	if prefix := k.String("conf.env-prefix"); prefix != "" {
		// ENVPREFIX_LOG__LEVEL maps to log.level, single underscores to dashes.
		err := k.Load(env.Provider(prefix+"_", ".", func(key string) string {
			key = strings.ToLower(strings.TrimPrefix(key, prefix+"_"))
			key = strings.ReplaceAll(key, "__", ".")
			return strings.ReplaceAll(key, "_", "-")
		}), nil)
		if err != nil {
			return nil, fmt.Errorf("error loading environment variables: %w", err)
		}
	}

	// Flags the user actually set take precedence over file and environment
	// values; the provider skips unchanged flags for keys already present.
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("error loading command line flags: %w", err)
	}
	return k, nil
}

func EndCommonParse(k *koanf.Koanf, config interface{}) error {
	if err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("error unmarshalling configuration: %w", err)
	}
	return nil
}
