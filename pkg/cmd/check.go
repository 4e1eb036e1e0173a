// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-cairo-air/field"
	bls12_377 "github.com/consensys/go-cairo-air/field/bls12-377"
	"github.com/consensys/go-cairo-air/field/koalabear"
	"github.com/consensys/go-cairo-air/field/mersenne31"
	"github.com/consensys/go-cairo-air/pkg/preprocessed"
	"github.com/consensys/go-cairo-air/pkg/util"
	"github.com/consensys/go-cairo-air/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "check the preprocessed trace is well-formed.",
	Long: `Check the preprocessed trace is well-formed.  That is, its columns
	are in canonical order, every kind is present at every size exactly once,
	identifiers are unique and, for every column up to a given size, the
	generated evaluation agrees with its packed form.`,
	Run: func(cmd *cobra.Command, args []string) {
		var ok bool
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configure(cmd)
		//
		maxLogSize := uint32(GetUint(cmd, "max-log-size"))
		parallelism := GetUint(cmd, "parallelism")
		generate := GetFlag(cmd, "generate")
		//
		switch getFieldConfig(cmd) {
		case field.MERSENNE31:
			ok = checkColumns[mersenne31.Element](maxLogSize, parallelism, generate)
		case field.KOALABEAR:
			ok = checkColumns[koalabear.Element](maxLogSize, parallelism, generate)
		case field.BLS12_377:
			ok = checkColumns[bls12_377.Element](maxLogSize, parallelism, generate)
		}
		//
		reportOutcome(ok, ansiEscapes(cmd))
		//
		if !ok {
			os.Exit(1)
		}
	},
}

func checkColumns[F field.Element[F]](maxLogSize uint32, parallelism uint, generate bool) bool {
	columns := preprocessed.TraceColumns[F]()
	// Structural checks
	if err := preprocessed.CheckCatalog(columns); err != nil {
		fmt.Println(err)
		return false
	}
	// Consistency checks
	stats := util.NewPerfStats()
	//
	if err := preprocessed.CheckColumns(columns, maxLogSize, parallelism); err != nil {
		fmt.Println(err)
		return false
	}
	//
	stats.Log("Checking preprocessed columns")
	//
	if generate {
		var selected []preprocessed.Column[F]
		//
		for _, column := range columns {
			if column.LogSize() <= maxLogSize {
				selected = append(selected, column)
			}
		}
		//
		evals := preprocessed.GenerateAll(selected, parallelism)
		log.Infof("generated %d evaluations", len(evals))
	}
	//
	return true
}

func reportOutcome(ok bool, ansi bool) {
	var (
		escape termio.AnsiEscape
		text   string
	)
	//
	if ok {
		escape, text = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN), "ok"
	} else {
		escape, text = termio.NewAnsiEscape().FgColour(termio.TERM_RED), "failed"
	}
	//
	if ansi {
		fmt.Printf("%s%s%s\n", escape.Build(), text, termio.ResetAnsiEscape().Build())
	} else {
		fmt.Println(text)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Uint("max-log-size", 16, "check consistency of columns up to this log size")
	checkCmd.Flags().Uint("parallelism", 0, "maximum number of concurrent checks (0 means unbounded)")
	checkCmd.Flags().Bool("generate", false, "also generate all evaluations up to the maximum log size")
}
