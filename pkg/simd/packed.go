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
	"fmt"
	"strings"

	"github.com/consensys/go-cairo-air/field"
)

// LOG_N_LANES is the log2 of the number of lanes in a packed vector.
const LOG_N_LANES uint32 = 4

// N_LANES is the number of field elements processed together by one packed
// operation.
const N_LANES = 1 << LOG_N_LANES

// Packed holds N_LANES field elements which are operated on lane-wise.
type Packed[F field.Element[F]] struct {
	lanes [N_LANES]F
}

// Broadcast constructs a packed value with every lane set to v.
func Broadcast[F field.Element[F]](v F) Packed[F] {
	var p Packed[F]
	//
	for i := range p.lanes {
		p.lanes[i] = v
	}
	//
	return p
}

// FromArray constructs a packed value from an array of lanes.
func FromArray[F field.Element[F]](lanes [N_LANES]F) Packed[F] {
	return Packed[F]{lanes}
}

// FromSlice constructs a packed value from exactly N_LANES elements.
func FromSlice[F field.Element[F]](lanes []F) Packed[F] {
	var p Packed[F]
	//
	if len(lanes) != N_LANES {
		panic(fmt.Sprintf("expected %d lanes, found %d", N_LANES, len(lanes)))
	}
	//
	copy(p.lanes[:], lanes)
	//
	return p
}

// Zero constructs a packed value where every lane is 0.
func Zero[F field.Element[F]]() Packed[F] {
	return Packed[F]{}
}

// Pack groups a slice of values into packed chunks of N_LANES consecutive
// elements.  The length of the slice must be a multiple of N_LANES.
func Pack[F field.Element[F]](values []F) []Packed[F] {
	if len(values)%N_LANES != 0 {
		panic(fmt.Sprintf("cannot pack %d values into lanes of %d", len(values), N_LANES))
	}
	//
	packed := make([]Packed[F], len(values)/N_LANES)
	//
	for i := range packed {
		packed[i] = FromSlice(values[i*N_LANES : (i+1)*N_LANES])
	}
	//
	return packed
}

// Lane returns the value held in the ith lane.
func (p Packed[F]) Lane(i uint) F {
	return p.lanes[i]
}

// ToArray returns the lanes of this packed value.
func (p Packed[F]) ToArray() [N_LANES]F {
	return p.lanes
}

// Add computes p + q lane-wise.
func (p Packed[F]) Add(q Packed[F]) Packed[F] {
	for i := range p.lanes {
		p.lanes[i] = p.lanes[i].Add(q.lanes[i])
	}
	//
	return p
}

// Sub computes p - q lane-wise.
func (p Packed[F]) Sub(q Packed[F]) Packed[F] {
	for i := range p.lanes {
		p.lanes[i] = p.lanes[i].Sub(q.lanes[i])
	}
	//
	return p
}

// Mul computes p * q lane-wise.
func (p Packed[F]) Mul(q Packed[F]) Packed[F] {
	for i := range p.lanes {
		p.lanes[i] = p.lanes[i].Mul(q.lanes[i])
	}
	//
	return p
}

// Equals checks whether every lane of p matches the corresponding lane of q.
func (p Packed[F]) Equals(q Packed[F]) bool {
	for i := range p.lanes {
		if p.lanes[i].Cmp(q.lanes[i]) != 0 {
			return false
		}
	}
	//
	return true
}

func (p Packed[F]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, v := range p.lanes {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(v.String())
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}
