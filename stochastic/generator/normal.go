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
	"math"

	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSource draws normally distributed values centred in the range and rounds
// them half-to-even. Values are not clipped, so wide scales produce samples outside
// the range.
type NormalSource struct {
	src rand.Source
}

// NewNormalSource creates a new NormalSource
func NewNormalSource(src rand.Source) *NormalSource {
	return &NormalSource{src: src}
}

// Generate draws n values with standard deviation shape.Scale.
func (s *NormalSource) Generate(rng stochastic.ValueRange, n int, shape stochastic.Shape) ([]int64, error) {
	normal, ok := shape.(stochastic.Normal)
	if !ok {
		return nil, errors.Newf("normal source cannot generate %v samples", shape)
	}
	if err := normal.Validate(); err != nil {
		return nil, err
	}
	dist := distuv.Normal{
		Mu:    Center(rng),
		Sigma: normal.Scale,
		Src:   s.src,
	}
	res := make([]int64, n)
	for i := range res {
		res[i] = int64(math.RoundToEven(dist.Rand()))
	}
	return res, nil
}

// Center returns the midpoint of the range.
func Center(rng stochastic.ValueRange) float64 {
	return float64(rng.Low) + float64(rng.High-rng.Low)/2
}
