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
package field

import (
	"testing"

	bls12_377 "github.com/consensys/go-cairo-air/field/bls12-377"
	"github.com/consensys/go-cairo-air/field/koalabear"
	"github.com/consensys/go-cairo-air/field/mersenne31"
	"github.com/stretchr/testify/require"
)

func init() {
	// make sure the interface is adhered to.
	_ = Element[mersenne31.Element](mersenne31.Element{})
	_ = Element[koalabear.Element](koalabear.Element{})
	_ = Element[bls12_377.Element](bls12_377.Element{})
}

func Test_Element_M31(t *testing.T) {
	checkElement[mersenne31.Element](t, mersenne31.Modulus)
}

func Test_Element_KoalaBear(t *testing.T) {
	checkElement[koalabear.Element](t, koalabear.Modulus)
}

func Test_Element_BLS12_377(t *testing.T) {
	checkElement[bls12_377.Element](t, 0)
}

func Test_Pow_01(t *testing.T) {
	checkPow[mersenne31.Element](t, 2, 30)
}

func Test_Pow_02(t *testing.T) {
	checkPow[koalabear.Element](t, 3, 19)
}

func Test_Pow_03(t *testing.T) {
	checkPow[bls12_377.Element](t, 2, 31)
}

func Test_Config_01(t *testing.T) {
	require.Equal(t, &MERSENNE31, GetConfig("m31"))
	require.Equal(t, &BLS12_377, GetConfig("BLS12_377"))
	require.Nil(t, GetConfig("GF_251"))
	require.Equal(t, []string{"M31", "KOALABEAR", "BLS12_377"}, Names())
}

// Check basic arithmetic identities hold for a given field.  A modulus of 0
// indicates the field is too large for wrap-around to be checked.
func checkElement[F Element[F]](t *testing.T, modulus uint32) {
	zero, one := Zero[F](), One[F]()
	//
	require.True(t, zero.IsZero())
	require.True(t, one.IsOne())
	require.True(t, zero.Inverse().IsZero())
	//
	for i := uint32(1); i < 1000; i++ {
		x := Uint32[F](i)
		require.Equal(t, i, x.ToUint32())
		require.True(t, x.Mul(x.Inverse()).IsOne(), "inverse of %d", i)
		require.True(t, Equal(x, x.Half().Double()), "halving of %d", i)
		require.Equal(t, 1, x.Cmp(Uint32[F](i-1)))
		require.Equal(t, i-1, x.Sub(one).ToUint32())
	}
	//
	if modulus != 0 {
		minusOne := Uint32[F](modulus - 1)
		require.True(t, minusOne.Add(one).IsZero())
		require.Equal(t, modulus-1, zero.Sub(one).ToUint32())
	}
}

func checkPow[F Element[F]](t *testing.T, base uint32, n uint64) {
	expected := uint64(1)
	//
	for i := uint64(0); i <= n; i++ {
		require.Equal(t, uint32(expected), Pow(Uint32[F](base), i).ToUint32(), "%d^%d", base, i)
		expected *= uint64(base)
	}
}
