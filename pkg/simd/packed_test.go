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
package simd

import (
	"testing"

	"github.com/consensys/go-cairo-air/field"
	"github.com/consensys/go-cairo-air/field/mersenne31"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type M31 = mersenne31.Element

func Test_Enumeration(t *testing.T) {
	enum := Enumeration[M31]()
	//
	for i := uint(0); i < N_LANES; i++ {
		assert.Equal(t, uint32(i), enum.Lane(i).ToUint32())
	}
}

func Test_BroadcastAdd(t *testing.T) {
	base := field.Uint32[M31](1600)
	row := Broadcast(base).Add(Enumeration[M31]())
	//
	for i := uint(0); i < N_LANES; i++ {
		assert.Equal(t, uint32(1600+i), row.Lane(i).ToUint32())
	}
	// Undo the addition
	require.True(t, row.Sub(Enumeration[M31]()).Equals(Broadcast(base)))
}

func Test_Mul(t *testing.T) {
	enum := Enumeration[M31]()
	squares := enum.Mul(enum)
	//
	for i := uint(0); i < N_LANES; i++ {
		assert.Equal(t, uint32(i*i), squares.Lane(i).ToUint32())
	}
}

func Test_Pack(t *testing.T) {
	values := make([]M31, 4*N_LANES)
	//
	for i := range values {
		values[i] = field.Uint32[M31](uint32(i))
	}
	//
	packed := Pack(values)
	require.Len(t, packed, 4)
	//
	for i, p := range packed {
		expected := Broadcast(field.Uint32[M31](uint32(i * N_LANES))).Add(Enumeration[M31]())
		assert.True(t, expected.Equals(p), "chunk %d: %s != %s", i, expected, p)
	}
	//
	require.Panics(t, func() { Pack(values[1:]) })
	require.Panics(t, func() { FromSlice(values[:N_LANES-1]) })
}

func Test_String(t *testing.T) {
	require.Equal(t, "[0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0]", Zero[M31]().String())
}
