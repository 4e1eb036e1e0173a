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

import "github.com/consensys/go-cairo-air/field"

// Enumeration returns the lane enumeration vector [0, 1, ..., N_LANES-1].
// Adding a broadcast base b to this gives the packed row indices b, b+1, ...,
// b+N_LANES-1.
func Enumeration[F field.Element[F]]() Packed[F] {
	var lanes [N_LANES]F
	//
	for i := range lanes {
		lanes[i] = field.Uint32[F](uint32(i))
	}
	//
	return FromArray(lanes)
}
