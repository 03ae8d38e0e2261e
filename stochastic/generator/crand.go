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
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/cockroachdb/errors"
)

// CRand is the portable linear congruential generator of the C standard
// (multiplier 1103515245, increment 12345) reduced to [0, CRandMax).
// Values are mapped into a range by modulo, as C programs commonly do.
type CRand struct {
	state uint32
}

// NewCRand creates a generator with its own state.
func NewCRand(seed uint32) *CRand {
	return &CRand{state: seed}
}

func (r *CRand) next() int64 {
	r.state = r.state*1103515245 + 12345
	return int64((r.state / 65536) % stochastic.CRandMax)
}

// Generate draws n values in [rng.Low, rng.High). Only uniform shapes are supported
// and the range must not be wider than CRandMax.
func (r *CRand) Generate(rng stochastic.ValueRange, n int, shape stochastic.Shape) ([]int64, error) {
	if shape != nil && shape.Kind() != stochastic.UniformKind {
		return nil, errors.Newf("crand cannot generate %v samples", shape.Kind())
	}
	if rng.Len() > stochastic.CRandMax {
		return nil, errors.Newf("range %v exceeds crand maximum %d", rng, stochastic.CRandMax)
	}
	width := int64(rng.Len())
	res := make([]int64, n)
	for i := range res {
		res[i] = rng.Low + r.next()%width
	}
	return res, nil
}
