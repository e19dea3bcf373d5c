// Copyright 2025 go-half Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command halfcheck verifies the fp16 codec.
//
// It checks the round trip of all 65536 binary16 patterns, compares
// decoding and rounding against the independent x448/float16 codec, and
// confirms that narrowing from float64 agrees with narrowing from float32.
// It exits with status 1 if any check fails.
//
// Usage:
//
//	halfcheck --samples 1000000 --seed 42
//	HALFCHECK_SEED=7 halfcheck --json
package main

import (
	"os"
	"runtime"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-half/internal/clilog"
)

// seedFromEnv returns HALFCHECK_SEED, or def when it is unset or malformed.
func seedFromEnv(def uint64) uint64 {
	val := os.Getenv("HALFCHECK_SEED")
	if val == "" {
		return def
	}
	if s, err := strconv.ParseUint(val, 0, 64); err == nil {
		return s
	}
	return def
}

func newRootCmd() *cobra.Command {
	cfg := Config{}
	var (
		jsonLogs bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "halfcheck",
		Short:         "Verify the binary16 codec",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return clilog.Setup(cmd.ErrOrStderr(), jsonLogs, logLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Samples < 0 {
				return errors.Errorf("--samples must not be negative, got %d", cfg.Samples)
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Samples, "samples", 1<<20, "Random float32 patterns checked on top of the boundary sweep")
	flags.Uint64Var(&cfg.Seed, "seed", seedFromEnv(1), "Seed for the random patterns (default from HALFCHECK_SEED)")
	flags.IntVar(&cfg.MaxReport, "max-report", 10, "Mismatches reported per check")
	flags.BoolVar(&jsonLogs, "json", false, "Log as JSON")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return cmd
}

func run(cfg Config) error {
	feature, ok := hostConversion()
	log.Info().
		Str("arch", runtime.GOARCH).
		Str("feature", feature).
		Bool("hardware_fp16", ok).
		Uint64("seed", cfg.Seed).
		Int("samples", cfg.Samples).
		Msg("starting checks")

	failed := 0
	for _, res := range RunAll(cfg) {
		if res.OK() {
			log.Info().Str("check", res.Name).Int("checked", res.Checked).Msg("check passed")
			continue
		}
		failed++
		log.Error().Str("check", res.Name).Int("checked", res.Checked).Int("failed", res.Failed).Msg("check failed")
		for _, m := range res.Mismatches {
			log.Warn().Str("check", res.Name).Str("input", m.Input).Str("got", m.Got).Str("want", m.Want).Msg("mismatch")
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d checks failed", failed, len(Checks))
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("halfcheck failed")
		os.Exit(1)
	}
}
