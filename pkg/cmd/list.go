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
	"github.com/consensys/go-cairo-air/pkg/util/termio"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "list the columns of the preprocessed trace.",
	Long: `List the columns of the preprocessed trace in their canonical
	(i.e. commitment) order, along with their kind and size.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configure(cmd)
		//
		switch getFieldConfig(cmd) {
		case field.MERSENNE31:
			listColumns(preprocessed.NewCatalog[mersenne31.Element](), ansiEscapes(cmd))
		case field.KOALABEAR:
			listColumns(preprocessed.NewCatalog[koalabear.Element](), ansiEscapes(cmd))
		case field.BLS12_377:
			listColumns(preprocessed.NewCatalog[bls12_377.Element](), ansiEscapes(cmd))
		}
	},
}

func listColumns[F field.Element[F]](catalog *preprocessed.Catalog[F], ansi bool) {
	tp := termio.NewTablePrinter(5, 1+catalog.Len())
	tp.SetRow(0, "#", "id", "kind", "log size", "rows")
	//
	for i, column := range catalog.Columns() {
		row := uint(i + 1)
		//
		tp.SetRow(row,
			fmt.Sprintf("%d", i),
			column.Id().String(),
			column.Kind().String(),
			fmt.Sprintf("%d", column.LogSize()),
			fmt.Sprintf("%d", uint(1)<<column.LogSize()))
	}
	//
	tp.SetMaxWidths(termio.GetWidth())
	printTable(tp, 5, ansi)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
