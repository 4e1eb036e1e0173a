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
	"fmt"

	"github.com/consensys/go-cairo-air/field"
	"github.com/consensys/go-cairo-air/pkg/domain"
	"github.com/consensys/go-cairo-air/pkg/simd"
)

// Seq is a column holding the numbers [0..(2^LogSize)-1], such that the value
// at each row is its row index.
type Seq[F field.Element[F]] struct {
	LogSize uint32
}

// NewSeq constructs a sequence column of 2^logSize rows.
func NewSeq[F field.Element[F]](logSize uint32) Seq[F] {
	return Seq[F]{logSize}
}

// Id returns the identifier of this column.
func (c Seq[F]) Id() ColumnId {
	return ColumnId(fmt.Sprintf("preprocessed_seq_%d", c.LogSize))
}

// PackedAt returns the row indices for the vecRow'th group of N_LANES
// consecutive rows.  This panics if vecRow is out of bounds.
func (c Seq[F]) PackedAt(vecRow uint) simd.Packed[F] {
	checkVecRow(c.LogSize, vecRow)
	//
	base := simd.Broadcast(field.Uint32[F](uint32(vecRow * simd.N_LANES)))
	//
	return base.Add(simd.Enumeration[F]())
}

// Generate the evaluation of this column over its canonic coset.
func (c Seq[F]) Generate() domain.Evaluation[F] {
	var (
		coset  = domain.NewCanonicCoset(c.LogSize)
		values = make([]F, coset.Size())
	)
	//
	for row := uint(0); row < coset.Size(); row++ {
		values[coset.StorageIndex(row)] = field.Uint32[F](uint32(row))
	}
	//
	return domain.NewEvaluation(coset, values)
}

func (c Seq[F]) kind() Kind {
	return SEQ
}

// Check that vecRow identifies a packed chunk within a column of 2^logSize rows.
func checkVecRow(logSize uint32, vecRow uint) {
	if n := uint(1) << logSize / simd.N_LANES; vecRow >= n {
		panic(fmt.Sprintf("packed row %d out-of-bounds (%d packed rows)", vecRow, n))
	}
}
