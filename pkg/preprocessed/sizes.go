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
	"slices"

	"github.com/consensys/go-cairo-air/pkg/simd"
)

// LOG_MAX_ROWS is the log2 of the largest trace supported by any component.
const LOG_MAX_ROWS uint32 = 20

// N_PREPROCESSED_COLUMN_SIZES is the number of distinct sizes at which each
// kind of preprocessed column is instantiated.
const N_PREPROCESSED_COLUMN_SIZES = LOG_MAX_ROWS - simd.LOG_N_LANES + 1

// [LOG_MAX_ROWS, LOG_MAX_ROWS - 1, ..., LOG_N_LANES].  Columns smaller than
// one packed vector cannot be evaluated lane-wise, hence the lower bound.
var logSizes = preprocessedLogSizes()

func preprocessedLogSizes() []uint32 {
	sizes := make([]uint32, N_PREPROCESSED_COLUMN_SIZES)
	//
	for i := range sizes {
		sizes[i] = LOG_MAX_ROWS - uint32(i)
	}
	//
	return sizes
}

// LogSizes returns the sizes (in descending order) at which preprocessed
// columns are instantiated.
func LogSizes() []uint32 {
	return slices.Clone(logSizes)
}
