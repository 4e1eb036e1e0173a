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
package koalabear

import (
	gnark "github.com/consensys/gnark-crypto/field/koalabear"
)

// Modulus of the KoalaBear field, 2³¹ - 2²⁴ + 1.
const Modulus uint32 = 0x7f000001

// Element wraps the gnark-crypto KoalaBear element to conform to the
// field.Element interface.
type Element struct {
	gnark.Element
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res gnark.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res gnark.Element
	//
	res.Sub(&x.Element, &y.Element)
	//
	return Element{res}
}

// AddUint32 x + y. It's the canonical way to create new elements.
func (x Element) AddUint32(y uint32) Element {
	var res gnark.Element
	//
	res.SetUint64(uint64(y))
	res.Add(&x.Element, &res)
	//
	return Element{res}
}

// ToUint32 returns the numerical value of x.
func (x Element) ToUint32() uint32 {
	return uint32(x.Uint64())
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res gnark.Element
	//
	res.Mul(&x.Element, &y.Element)
	//
	return Element{res}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Double 2x
func (x Element) Double() Element {
	var res gnark.Element
	//
	res.Double(&x.Element)
	//
	return Element{res}
}

// Half x/2
func (x Element) Half() Element {
	res := x.Element
	res.Halve()
	//
	return Element{res}
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var res gnark.Element
	//
	res.Inverse(&x.Element)
	//
	return Element{res}
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// String implementation for the Element interface
func (x Element) String() string {
	return x.Element.String()
}

// Text returns the numerical value of x in the given base.
func (x Element) Text(base int) string {
	return x.Element.Text(base)
}
