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
package domain

import (
	"fmt"
	"slices"
)

// Evaluation holds the values of a column over a canonic coset, stored in
// bit-reversed order.  This is the representation committed to.
type Evaluation[T any] struct {
	domain CanonicCoset
	values []T
}

// NewEvaluation constructs an evaluation from values which are already in
// bit-reversed order.  The number of values must match the domain size.
func NewEvaluation[T any](domain CanonicCoset, values []T) Evaluation[T] {
	if uint(len(values)) != domain.Size() {
		panic(fmt.Sprintf("%d values given for %s", len(values), domain))
	}
	//
	return Evaluation[T]{domain, values}
}

// FromNaturalOrder constructs an evaluation from values given in natural row
// order, permuting them into bit-reversed storage.  The given slice is not
// modified.
func FromNaturalOrder[T any](domain CanonicCoset, values []T) Evaluation[T] {
	values = slices.Clone(values)
	//
	BitReverse(values)
	//
	return NewEvaluation(domain, values)
}

// Domain returns the coset over which this evaluation is defined.
func (e Evaluation[T]) Domain() CanonicCoset {
	return e.domain
}

// LogSize returns the log2 of the number of values in this evaluation.
func (e Evaluation[T]) LogSize() uint32 {
	return e.domain.LogSize()
}

// Len returns the number of values in this evaluation.
func (e Evaluation[T]) Len() uint {
	return uint(len(e.values))
}

// At returns the value at a given natural row.
func (e Evaluation[T]) At(row uint) T {
	return e.values[e.domain.StorageIndex(row)]
}

// Values returns the underlying values in bit-reversed storage order.
func (e Evaluation[T]) Values() []T {
	return e.values
}

// NaturalOrder returns a copy of the values in natural row order.
func (e Evaluation[T]) NaturalOrder() []T {
	values := slices.Clone(e.values)
	//
	BitReverse(values)
	//
	return values
}
