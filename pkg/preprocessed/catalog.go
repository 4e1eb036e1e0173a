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
	"cmp"
	"slices"

	"github.com/consensys/go-cairo-air/field"
	log "github.com/sirupsen/logrus"
)

// TraceColumns returns the columns of the preprocessed trace, in their
// canonical order.  That is, one column for each kind in KINDS at each size in
// LogSizes(), sorted by decreasing size and, for equal sizes, by increasing
// kind priority.
func TraceColumns[F field.Element[F]]() []Column[F] {
	var (
		sizes   = LogSizes()
		columns = make([]Column[F], 0, len(KINDS)*len(sizes))
	)
	//
	for _, kind := range KINDS {
		for _, logSize := range sizes {
			columns = append(columns, NewColumn[F](kind, logSize))
		}
	}
	// Stable, such that the order is fully determined by the comparator
	// together with registration order.
	slices.SortStableFunc(columns, compareColumns[F])
	//
	log.Debugf("constructed %d preprocessed columns (%d kinds, sizes 2^%d..2^%d)", len(columns), len(KINDS),
		sizes[len(sizes)-1], sizes[0])
	//
	return columns
}

// Order columns by decreasing size, then by increasing kind priority.
func compareColumns[F field.Element[F]](lhs, rhs Column[F]) int {
	if c := cmp.Compare(rhs.LogSize(), lhs.LogSize()); c != 0 {
		return c
	}
	//
	return cmp.Compare(lhs.Kind().Priority(), rhs.Kind().Priority())
}

// Catalog provides lookup of preprocessed columns by identifier, whilst
// retaining their canonical order.
type Catalog[F field.Element[F]] struct {
	columns []Column[F]
	index   map[ColumnId]uint
}

// NewCatalog constructs a catalog for the preprocessed trace.
func NewCatalog[F field.Element[F]]() *Catalog[F] {
	var (
		columns = TraceColumns[F]()
		index   = make(map[ColumnId]uint, len(columns))
	)
	//
	for i, column := range columns {
		index[column.Id()] = uint(i)
	}
	//
	return &Catalog[F]{columns, index}
}

// Columns returns the columns of this catalog in canonical order.  The
// returned slice should not be modified.
func (c *Catalog[F]) Columns() []Column[F] {
	return c.columns
}

// Len returns the number of columns in this catalog.
func (c *Catalog[F]) Len() uint {
	return uint(len(c.columns))
}

// Get returns the ith column in canonical order.
func (c *Catalog[F]) Get(i uint) Column[F] {
	return c.columns[i]
}

// IndexOf returns the position of the column with the given identifier, or
// false if there is no such column.
func (c *Catalog[F]) IndexOf(id ColumnId) (uint, bool) {
	i, ok := c.index[id]
	//
	return i, ok
}

// Find returns the column with the given identifier, or false (along with the
// zero Column) if there is no such column.
func (c *Catalog[F]) Find(id ColumnId) (Column[F], bool) {
	if i, ok := c.index[id]; ok {
		return c.columns[i], true
	}
	//
	return Column[F]{}, false
}

// Ids returns the identifiers of all columns in canonical order.
func (c *Catalog[F]) Ids() []ColumnId {
	ids := make([]ColumnId, len(c.columns))
	//
	for i, column := range c.columns {
		ids[i] = column.Id()
	}
	//
	return ids
}
