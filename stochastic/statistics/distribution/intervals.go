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
	"gonum.org/v1/gonum/floats"
)

// Intervals aggregates d over a sliding window: every key k receives the sum of
// d over [k, k+width), missing keys counting as zero. Windows overlap (stride one);
// this is not a partition into disjoint buckets.
func Intervals(d Distribution, width int, normalize bool) (Distribution, error) {
	if width < 1 {
		return Distribution{}, stochastic.InvalidArgumentf("interval width must be positive, got %d", width)
	}

	res := Distribution{
		Keys:   make([]int64, len(d.Keys)),
		Values: make([]float64, len(d.Keys)),
	}
	copy(res.Keys, d.Keys)

	// keys are ascending, so the window of key i ends at the first key >= k+width
	end := 0
	for i, k := range d.Keys {
		limit := k + int64(width)
		if end < i {
			end = i
		}
		for end < len(d.Keys) && d.Keys[end] < limit {
			end++
		}
		res.Values[i] = floats.Sum(d.Values[i:end])
	}

	if normalize {
		total := floats.Sum(res.Values)
		if total == 0 {
			return Distribution{}, stochastic.ErrEmptyDistribution
		}
		floats.Scale(1/total, res.Values)
	}
	return res, nil
}
