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
	"math/bits"
)

// CanonicCoset identifies the canonical evaluation domain of a given size.
// Only its size is of interest here, since evaluations over it are always
// stored in bit-reversed order.
type CanonicCoset struct {
	logSize uint32
}

// NewCanonicCoset constructs the canonic coset of 2^logSize points.
func NewCanonicCoset(logSize uint32) CanonicCoset {
	if logSize >= bits.UintSize {
		panic(fmt.Sprintf("domain size 2^%d too large", logSize))
	}
	//
	return CanonicCoset{logSize}
}

// LogSize returns the log2 of the number of points in this coset.
func (c CanonicCoset) LogSize() uint32 {
	return c.logSize
}

// Size returns the number of points in this coset.
func (c CanonicCoset) Size() uint {
	return 1 << c.logSize
}

// StorageIndex returns the position at which the value for a given natural
// row is held, when evaluations over this coset are stored in bit-reversed
// order.
func (c CanonicCoset) StorageIndex(row uint) uint {
	if row >= c.Size() {
		panic(fmt.Sprintf("row %d out-of-bounds for domain of size %d", row, c.Size()))
	}
	//
	return BitReverseIndex(row, c.logSize)
}

func (c CanonicCoset) String() string {
	return fmt.Sprintf("coset(2^%d)", c.logSize)
}

// BitReverseIndex reverses the low logSize bits of i.
func BitReverseIndex(i uint, logSize uint32) uint {
	if logSize == 0 {
		return 0
	}
	//
	return bits.Reverse(i) >> (bits.UintSize - uint(logSize))
}

// BitReverse permutes a slice in place, such that the element at index i moves
// to index BitReverseIndex(i).  The slice length must be a power of two.  This
// permutation is its own inverse.
func BitReverse[T any](values []T) {
	n := uint(len(values))
	//
	if n&(n-1) != 0 {
		panic(fmt.Sprintf("length %d is not a power of two", n))
	} else if n <= 1 {
		return
	}
	//
	logSize := uint32(bits.TrailingZeros(n))
	//
	for i := uint(0); i < n; i++ {
		if j := BitReverseIndex(i, logSize); i < j {
			values[i], values[j] = values[j], values[i]
		}
	}
}
