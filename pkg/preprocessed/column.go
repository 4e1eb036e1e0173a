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

// Column is a preprocessed column of any kind.  The set of kinds is closed:
// every operation dispatches over the known kinds, such that consumers of
// preprocessed columns can be written without regard to kind.  The zero value
// is not a valid column, and every method on it panics.
type Column[F field.Element[F]] struct {
	variant variant
}

// variant is implemented only by the kinds defined in this package.
type variant interface {
	kind() Kind
}

// NewColumn constructs a preprocessed column of a given kind and size.
func NewColumn[F field.Element[F]](kind Kind, logSize uint32) Column[F] {
	switch kind {
	case IS_FIRST:
		return IsFirstColumn(NewIsFirst[F](logSize))
	case SEQ:
		return SeqColumn(NewSeq[F](logSize))
	default:
		panic(fmt.Sprintf("unknown preprocessed column kind %s", kind))
	}
}

// IsFirstColumn wraps an is-first column.
func IsFirstColumn[F field.Element[F]](column IsFirst[F]) Column[F] {
	return Column[F]{column}
}

// SeqColumn wraps a sequence column.
func SeqColumn[F field.Element[F]](column Seq[F]) Column[F] {
	return Column[F]{column}
}

// UNINITIALISED_COLUMN is the panic message for using the zero Column value.
const UNINITIALISED_COLUMN = "uninitialised preprocessed column"

// Kind returns the kind of this column.
func (c Column[F]) Kind() Kind {
	if c.variant == nil {
		panic(UNINITIALISED_COLUMN)
	}
	//
	return c.variant.kind()
}

// LogSize returns the log2 of the number of rows in this column.
func (c Column[F]) LogSize() uint32 {
	switch column := c.variant.(type) {
	case IsFirst[F]:
		return column.LogSize
	case Seq[F]:
		return column.LogSize
	default:
		panic(UNINITIALISED_COLUMN)
	}
}

// Id returns the unique identifier of this column.
func (c Column[F]) Id() ColumnId {
	switch column := c.variant.(type) {
	case IsFirst[F]:
		return column.Id()
	case Seq[F]:
		return column.Id()
	default:
		panic(UNINITIALISED_COLUMN)
	}
}

// Generate the evaluation of this column, in bit-reversed order, for
// commitment.
func (c Column[F]) Generate() domain.Evaluation[F] {
	switch column := c.variant.(type) {
	case IsFirst[F]:
		return column.Generate()
	case Seq[F]:
		return column.Generate()
	default:
		panic(UNINITIALISED_COLUMN)
	}
}

// PackedAt returns the values of the vecRow'th group of N_LANES consecutive
// rows, for use in vectorised constraint evaluation.
func (c Column[F]) PackedAt(vecRow uint) simd.Packed[F] {
	switch column := c.variant.(type) {
	case IsFirst[F]:
		return column.PackedAt(vecRow)
	case Seq[F]:
		return column.PackedAt(vecRow)
	default:
		panic(UNINITIALISED_COLUMN)
	}
}

// PackedRows returns the number of packed rows in this column.
func (c Column[F]) PackedRows() uint {
	return uint(1) << c.LogSize() / simd.N_LANES
}

func (c Column[F]) String() string {
	return c.Id().String()
}
