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
	"sort"

	"github.com/0xsoniclabs/distlab/stochastic"
)

// Distribution maps every value of a range to its frequency or probability.
// Keys are strictly ascending; plotting and interval aggregation rely on the order.
type Distribution struct {
	Keys   []int64
	Values []float64
}

// Compute counts the samples over the full domain of rng, zero-filling values that
// were never drawn. Samples outside rng are kept under their literal value.
// With normalize set, every count is divided by the number of samples.
func Compute(samples []int64, rng stochastic.ValueRange, normalize bool) (Distribution, error) {
	if err := rng.Validate(); err != nil {
		return Distribution{}, err
	}
	if normalize && len(samples) == 0 {
		return Distribution{}, stochastic.ErrEmptyDistribution
	}

	dense := make([]float64, rng.Len())
	var outside map[int64]float64
	for _, s := range samples {
		if rng.Contains(s) {
			dense[s-rng.Low]++
			continue
		}
		if outside == nil {
			outside = make(map[int64]float64)
		}
		outside[s]++
	}

	d := Distribution{
		Keys:   rng.Values(),
		Values: dense,
	}
	if len(outside) > 0 {
		d = d.merge(outside)
	}

	if normalize {
		total := float64(len(samples))
		for i := range d.Values {
			d.Values[i] /= total
		}
	}
	return d, nil
}

// merge adds keys not yet present and restores the ascending order.
func (d Distribution) merge(extra map[int64]float64) Distribution {
	type entry struct {
		key   int64
		value float64
	}
	entries := make([]entry, 0, len(d.Keys)+len(extra))
	for i, k := range d.Keys {
		entries = append(entries, entry{k, d.Values[i]})
	}
	for k, v := range extra {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	res := Distribution{
		Keys:   make([]int64, len(entries)),
		Values: make([]float64, len(entries)),
	}
	for i, e := range entries {
		res.Keys[i] = e.key
		res.Values[i] = e.value
	}
	return res
}

// Len returns the number of keys.
func (d Distribution) Len() int {
	return len(d.Keys)
}

// Get returns the value of key k.
func (d Distribution) Get(k int64) (float64, bool) {
	i := sort.Search(len(d.Keys), func(i int) bool { return d.Keys[i] >= k })
	if i < len(d.Keys) && d.Keys[i] == k {
		return d.Values[i], true
	}
	return 0, false
}

// Max returns the largest value, or zero for an empty distribution.
func (d Distribution) Max() float64 {
	res := 0.0
	for _, v := range d.Values {
		if v > res {
			res = v
		}
	}
	return res
}

// Sum adds all values using Kahan's summation algorithm.
func (d Distribution) Sum() float64 {
	sum := 0.0
	c := 0.0
	for _, v := range d.Values {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum
}

// Points returns the distribution as (x, y) pairs in key order.
func (d Distribution) Points() [][2]float64 {
	points := make([][2]float64, len(d.Keys))
	for i, k := range d.Keys {
		points[i] = [2]float64{float64(k), d.Values[i]}
	}
	return points
}
