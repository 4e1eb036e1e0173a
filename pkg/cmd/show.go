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
	"github.com/consensys/go-cairo-air/pkg/simd"
	"github.com/consensys/go-cairo-air/pkg/util/termio"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] column_id",
	Short: "print the values of a preprocessed column.",
	Long: `Print the values of a preprocessed column over a window of rows.  For
	each row, the position at which it is stored in the (bit-reversed)
	evaluation is also shown, along with the packed rows covering the window.`,
	Run: func(cmd *cobra.Command, args []string) {
		var ok bool
		//
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configure(cmd)
		//
		id := preprocessed.ColumnId(args[0])
		start := GetUint(cmd, "start")
		end := GetUint(cmd, "end")
		ansi := ansiEscapes(cmd)
		//
		switch getFieldConfig(cmd) {
		case field.MERSENNE31:
			ok = showColumn(preprocessed.NewCatalog[mersenne31.Element](), id, start, end, ansi)
		case field.KOALABEAR:
			ok = showColumn(preprocessed.NewCatalog[koalabear.Element](), id, start, end, ansi)
		case field.BLS12_377:
			ok = showColumn(preprocessed.NewCatalog[bls12_377.Element](), id, start, end, ansi)
		}
		//
		if !ok {
			fmt.Printf("unknown column \"%s\"\n", id)
			os.Exit(2)
		}
	},
}

func showColumn[F field.Element[F]](catalog *preprocessed.Catalog[F], id preprocessed.ColumnId, start, end uint,
	ansi bool) bool {
	column, ok := catalog.Find(id)
	//
	if !ok {
		return false
	}
	//
	index, _ := catalog.IndexOf(id)
	eval := column.Generate()
	end = min(end, eval.Len())
	start = min(start, end)
	//
	fmt.Printf("column #%d %s (kind %s, 2^%d rows)\n\n", index, id, column.Kind(), column.LogSize())
	// Print scalar view
	tp := termio.NewTablePrinter(3, 1+end-start)
	tp.SetRow(0, "row", "position", "value")
	//
	for row := start; row < end; row++ {
		tp.SetRow(1+row-start,
			fmt.Sprintf("%d", row),
			fmt.Sprintf("%d", eval.Domain().StorageIndex(row)),
			eval.At(row).String())
	}
	//
	printTable(tp, 3, ansi)
	// Print packed view
	if start < end {
		first, last := start/simd.N_LANES, (end-1)/simd.N_LANES
		tp = termio.NewTablePrinter(2, 2+last-first)
		tp.SetRow(0, "packed row", "lanes")
		//
		for vecRow := first; vecRow <= last; vecRow++ {
			tp.SetRow(1+vecRow-first, fmt.Sprintf("%d", vecRow), column.PackedAt(vecRow).String())
		}
		//
		fmt.Println()
		printTable(tp, 2, ansi)
	}
	//
	return true
}

// Print a table whose first row is a header of a given width.
func printTable(tp *termio.TablePrinter, width uint, ansi bool) {
	for col := uint(0); col < width; col++ {
		tp.SetEscape(col, 0, termio.BoldAnsiEscape())
	}
	//
	tp.AnsiEscapes(ansi)
	//
	if err := tp.Print(os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Uint("start", 0, "first row to print")
	showCmd.Flags().Uint("end", 32, "last row to print (exclusive)")
}
