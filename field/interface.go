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

import "fmt"

// An Element of a prime-order field.  Implementations are value types whose
// zero value represents 0.
type Element[Operand any] interface {
	fmt.Stringer
	Add(y Operand) Operand      // Add x+y
	Sub(y Operand) Operand      // Sub x-y
	AddUint32(y uint32) Operand // AddUint32 x+y. It's the canonical way to create a new element with value y.
	ToUint32() uint32           // ToUint32 returns the numerical value of x.
	Mul(y Operand) Operand      // Mul x*y
	Cmp(y Operand) int          // Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Double() Operand            // Double 2x
	Half() Operand              // Half x/2
	Inverse() Operand           // Inverse x⁻¹, or 0 if x = 0.
	IsZero() bool               // IsZero checks whether x = 0
	IsOne() bool                // IsOne checks whether x = 1
	Text(base int) string       // Text returns the numerical value of x in the given base.
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.AddUint32(1)
}

// Uint32 construct a field element from a given uint32
func Uint32[F Element[F]](val uint32) F {
	var element F
	//
	return element.AddUint32(val)
}

// Pow takes a given value to the power n.
func Pow[F Element[F]](val F, n uint64) F {
	if n == 0 {
		val = One[F]()
	} else if n > 1 {
		m := n / 2
		// Check for odd case
		if n%2 == 1 {
			tmp := val
			val = Pow(val, m)
			val = val.Mul(val).Mul(tmp)
		} else {
			// Even case is easy
			val = Pow(val, m)
			val = val.Mul(val)
		}
	}
	//
	return val
}

// Equal checks whether two field elements have the same value.
func Equal[F Element[F]](x, y F) bool {
	return x.Cmp(y) == 0
}
