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

package distribution

import (
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// ToECDF returns the cumulative distribution of d as (value, probability) points,
// reduced to at most numPoints points with the Visvalingam-Whyatt algorithm.
func ToECDF(d Distribution, numPoints int) ([][2]float64, error) {
	total := d.Sum()
	if total == 0 {
		return nil, stochastic.ErrEmptyDistribution
	}

	ls := make(orb.LineString, 0, len(d.Keys))
	// Kahan's summation for the accumulated probabilities
	sum := 0.0
	c := 0.0
	for i, k := range d.Keys {
		y := d.Values[i]/total - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		ls = append(ls, orb.Point{float64(k), sum})
	}
	// rounding must not leave the curve short of one
	ls[len(ls)-1][1] = 1.0

	if numPoints > 1 && len(ls) > numPoints {
		ls = simplify.VisvalingamKeep(numPoints).Simplify(ls).(orb.LineString)
	}

	ecdf := make([][2]float64, len(ls))
	for i := range ls {
		ecdf[i] = [2]float64(ls[i])
	}
	return ecdf, nil
}
