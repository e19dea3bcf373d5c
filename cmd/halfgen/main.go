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

// Command halfgen generates the named operator shims of package half.
//
// Go has no operator overloading, so every (operator, operand family,
// operand order) combination gets a small named function that forwards to
// the shared dispatcher with the right promotion policy. halfgen writes all
// of them from one table so that none is maintained by hand.
//
// Usage, via go:generate in package half:
//
//	//go:generate go run ../cmd/halfgen --output ops.gen.go --package half
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-half/internal/clilog"
)

func newRootCmd() *cobra.Command {
	gen := &Generator{}
	var (
		jsonLogs bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "halfgen",
		Short:         "Generate the named operator shims of package half",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return clilog.Setup(cmd.ErrOrStderr(), jsonLogs, logLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gen.Run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&gen.OutputFile, "output", "o", "ops.gen.go", "Output file")
	flags.StringVar(&gen.PackageOut, "package", "half", "Package name of the generated file")
	flags.BoolVar(&jsonLogs, "json", false, "Log as JSON")
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("halfgen failed")
		os.Exit(1)
	}
}
