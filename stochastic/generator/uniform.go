// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package generator

import (
	"math/rand"

	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/cockroachdb/errors"
)

// UniformSource draws uniformly distributed integers from its own random state.
type UniformSource struct {
	rg *rand.Rand
}

// NewUniformSource creates a new UniformSource
func NewUniformSource(rg *rand.Rand) *UniformSource {
	return &UniformSource{rg: rg}
}

// Generate draws n values in [rng.Low, rng.High).
func (s *UniformSource) Generate(rng stochastic.ValueRange, n int, shape stochastic.Shape) ([]int64, error) {
	if shape != nil && shape.Kind() != stochastic.UniformKind {
		return nil, errors.Newf("uniform source cannot generate %v samples", shape.Kind())
	}
	width := int64(rng.Len())
	if width <= 0 {
		return nil, errors.Newf("empty range %v", rng)
	}
	res := make([]int64, n)
	for i := range res {
		res[i] = rng.Low + s.rg.Int63n(width)
	}
	return res, nil
}
