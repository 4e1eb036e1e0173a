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
	"github.com/consensys/go-cairo-air/field"
	"github.com/consensys/go-cairo-air/pkg/domain"
	"github.com/consensys/go-cairo-air/pkg/util"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// GenerateAll generates the evaluations of all given columns, such that the
// ith evaluation corresponds to the ith column.  Columns are generated
// concurrently, using at most parallelism go-routines (or unbounded if 0).
func GenerateAll[F field.Element[F]](columns []Column[F], parallelism uint) []domain.Evaluation[F] {
	var (
		group  errgroup.Group
		evals  = make([]domain.Evaluation[F], len(columns))
		stats  = util.NewPerfStats()
		nCells uint
	)
	//
	if parallelism > 0 {
		group.SetLimit(int(parallelism))
	}
	//
	for i, column := range columns {
		nCells += uint(1) << column.LogSize()
		//
		group.Go(func() error {
			evals[i] = column.Generate()
			return nil
		})
	}
	// The group only bounds concurrency, since generation cannot fail.
	_ = group.Wait()
	//
	log.Debugf("generated %d preprocessed columns (%d cells)", len(columns), nCells)
	stats.Log("Generating preprocessed trace")
	//
	return evals
}
