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
package preprocessed

import (
	"errors"
	"fmt"

	"github.com/consensys/go-cairo-air/field"
	"github.com/consensys/go-cairo-air/pkg/domain"
	"github.com/consensys/go-cairo-air/pkg/simd"
	"golang.org/x/sync/errgroup"
)

// CheckCatalog checks the structural properties of a preprocessed trace: that
// its columns are in canonical order, that every kind is present at every size
// exactly once, and that identifiers are unique.
func CheckCatalog[F field.Element[F]](columns []Column[F]) error {
	return errors.Join(CheckOrder(columns), CheckCoverage(columns), CheckUniqueIds(columns))
}

// CheckOrder checks columns are sorted by decreasing size and, for columns of
// equal size, by increasing kind priority.
func CheckOrder[F field.Element[F]](columns []Column[F]) error {
	for i := 1; i < len(columns); i++ {
		if compareColumns(columns[i-1], columns[i]) > 0 {
			return fmt.Errorf("column %s (#%d) out of order with %s (#%d)", columns[i-1], i-1, columns[i], i)
		}
	}
	//
	return nil
}

// CheckCoverage checks every kind in KINDS is instantiated exactly once at
// each size in LogSizes(), and at no other size.
func CheckCoverage[F field.Element[F]](columns []Column[F]) error {
	type instance struct {
		kind    Kind
		logSize uint32
	}
	//
	var (
		counts = make(map[instance]uint)
		errs   []error
	)
	//
	for _, column := range columns {
		counts[instance{column.Kind(), column.LogSize()}]++
	}
	//
	for _, kind := range KINDS {
		for _, logSize := range LogSizes() {
			key := instance{kind, logSize}
			//
			if n := counts[key]; n != 1 {
				errs = append(errs, fmt.Errorf("expected one %s column of size 2^%d, found %d", kind, logSize, n))
			}
			//
			delete(counts, key)
		}
	}
	// Anything left over was not expected
	for key, n := range counts {
		errs = append(errs, fmt.Errorf("unexpected %s column(s) of size 2^%d (x%d)", key.kind, key.logSize, n))
	}
	//
	return errors.Join(errs...)
}

// CheckUniqueIds checks that no two columns share the same identifier.
func CheckUniqueIds[F field.Element[F]](columns []Column[F]) error {
	seen := make(map[ColumnId]int, len(columns))
	//
	for i, column := range columns {
		id := column.Id()
		//
		if j, ok := seen[id]; ok {
			return fmt.Errorf("columns #%d and #%d share identifier %s", j, i, id)
		}
		//
		seen[id] = i
	}
	//
	return nil
}

// CheckColumn checks the generated evaluation of a column is consistent with
// its packed form.  Specifically, that it has the expected length and that,
// when read in natural order, each group of N_LANES values matches the
// corresponding packed row.
func CheckColumn[F field.Element[F]](column Column[F]) error {
	return checkEvaluation(column, column.Generate())
}

// Check a given evaluation against the packed form of a column.
func checkEvaluation[F field.Element[F]](column Column[F], eval domain.Evaluation[F]) error {
	expected := uint(1) << column.LogSize()
	//
	if eval.Len() != expected {
		return fmt.Errorf("column %s has %d rows (expected %d)", column, eval.Len(), expected)
	}
	//
	for i, chunk := range simd.Pack(eval.NaturalOrder()) {
		if packed := column.PackedAt(uint(i)); !packed.Equals(chunk) {
			return fmt.Errorf("column %s inconsistent at packed row %d (%s vs %s)", column, i, packed, chunk)
		}
	}
	//
	return nil
}

// CheckColumns runs CheckColumn on every column of size at most 2^maxLogSize,
// using at most parallelism concurrent checks (or unbounded if 0).  The first
// failure encountered is returned.
func CheckColumns[F field.Element[F]](columns []Column[F], maxLogSize uint32, parallelism uint) error {
	var group errgroup.Group
	//
	if parallelism > 0 {
		group.SetLimit(int(parallelism))
	}
	//
	for _, column := range columns {
		if column.LogSize() <= maxLogSize {
			group.Go(func() error {
				return CheckColumn(column)
			})
		}
	}
	//
	return group.Wait()
}
