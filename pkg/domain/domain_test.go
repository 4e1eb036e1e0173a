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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BitReverseIndex(t *testing.T) {
	assert.Equal(t, uint(0), BitReverseIndex(0, 0))
	assert.Equal(t, uint(0), BitReverseIndex(0, 3))
	assert.Equal(t, uint(4), BitReverseIndex(1, 3))
	assert.Equal(t, uint(6), BitReverseIndex(3, 3))
	assert.Equal(t, uint(1), BitReverseIndex(8, 4))
	assert.Equal(t, uint(0b0111), BitReverseIndex(0b1110, 4))
}

func Test_BitReverse_Involution(t *testing.T) {
	for logSize := uint32(0); logSize <= 10; logSize++ {
		values := naturals(1 << logSize)
		//
		BitReverse(values)
		//
		for i, v := range values {
			require.Equal(t, BitReverseIndex(uint(i), logSize), v)
		}
		//
		BitReverse(values)
		require.Equal(t, naturals(1<<logSize), values)
	}
}

func Test_BitReverse_Invalid(t *testing.T) {
	require.Panics(t, func() { BitReverse(make([]uint, 3)) })
}

func Test_Evaluation_01(t *testing.T) {
	coset := NewCanonicCoset(5)
	eval := FromNaturalOrder(coset, naturals(32))
	//
	require.Equal(t, uint(32), eval.Len())
	require.Equal(t, uint32(5), eval.LogSize())
	// natural order access
	for row := uint(0); row < eval.Len(); row++ {
		require.Equal(t, row, eval.At(row))
		require.Equal(t, row, eval.Values()[coset.StorageIndex(row)])
	}
	//
	require.Equal(t, naturals(32), eval.NaturalOrder())
	require.NotEqual(t, naturals(32), eval.Values())
}

func Test_Evaluation_02(t *testing.T) {
	coset := NewCanonicCoset(2)
	//
	require.Panics(t, func() { NewEvaluation(coset, naturals(3)) })
	require.Panics(t, func() { FromNaturalOrder(coset, naturals(4)).At(4) })
}

func naturals(n uint) []uint {
	values := make([]uint, n)
	//
	for i := range values {
		values[i] = uint(i)
	}
	//
	return values
}
