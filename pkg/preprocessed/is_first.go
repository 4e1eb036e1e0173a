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

// IsFirst is a column which is 1 on the first row, and 0 on every other row.
type IsFirst[F field.Element[F]] struct {
	LogSize uint32
}

// NewIsFirst constructs an is-first column of 2^logSize rows.
func NewIsFirst[F field.Element[F]](logSize uint32) IsFirst[F] {
	return IsFirst[F]{logSize}
}

// Id returns the identifier of this column.
func (c IsFirst[F]) Id() ColumnId {
	return ColumnId(fmt.Sprintf("preprocessed_is_first_%d", c.LogSize))
}

// PackedAt returns the values for the vecRow'th group of N_LANES consecutive
// rows.  Only the first lane of the first group is non-zero.  This panics if
// vecRow is out of bounds.
func (c IsFirst[F]) PackedAt(vecRow uint) simd.Packed[F] {
	var lanes [simd.N_LANES]F
	//
	checkVecRow(c.LogSize, vecRow)
	//
	if vecRow == 0 {
		lanes[0] = field.One[F]()
	}
	//
	return simd.FromArray(lanes)
}

// Generate the evaluation of this column over its canonic coset.
func (c IsFirst[F]) Generate() domain.Evaluation[F] {
	var (
		coset  = domain.NewCanonicCoset(c.LogSize)
		values = make([]F, coset.Size())
	)
	//
	values[coset.StorageIndex(0)] = field.One[F]()
	//
	return domain.NewEvaluation(coset, values)
}

func (c IsFirst[F]) kind() Kind {
	return IS_FIRST
}
