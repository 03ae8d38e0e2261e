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
	"math"
	"testing"

	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformDistribution(n int) Distribution {
	d := Distribution{Keys: make([]int64, n), Values: make([]float64, n)}
	for i := range n {
		d.Keys[i] = int64(i)
		d.Values[i] = 1.0 / float64(n)
	}
	return d
}

func TestIntervals_SlidingWindowSums(t *testing.T) {
	d := uniformDistribution(20)

	res, err := Intervals(d, 5, false)
	require.NoError(t, err)
	require.Equal(t, d.Keys, res.Keys)
	for i, k := range res.Keys {
		want := 0.05 * math.Min(5, float64(20-k))
		assert.InDelta(t, want, res.Values[i], 1e-12, "key %d", k)
	}
}

func TestIntervals_NormalizedSumsToOne(t *testing.T) {
	res, err := Intervals(uniformDistribution(20), 5, true)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Sum(), 1e-9)
}

func TestIntervals_GapsCountAsZero(t *testing.T) {
	d := Distribution{Keys: []int64{0, 1, 4, 9}, Values: []float64{1, 2, 3, 4}}
	res, err := Intervals(d, 3, false)
	require.NoError(t, err)
	// [0,3)={0,1} [1,4)={1} [4,7)={4} [9,12)={9}
	assert.Equal(t, []float64{3, 2, 3, 4}, res.Values)
}

func TestIntervals_WidthOneIsIdentity(t *testing.T) {
	d := Distribution{Keys: []int64{0, 1, 2}, Values: []float64{0.2, 0.5, 0.3}}
	res, err := Intervals(d, 1, false)
	require.NoError(t, err)
	assert.Equal(t, d.Values, res.Values)
}

func TestIntervals_DoesNotModifyInput(t *testing.T) {
	d := uniformDistribution(4)
	before := append([]float64(nil), d.Values...)
	_, err := Intervals(d, 2, true)
	require.NoError(t, err)
	assert.Equal(t, before, d.Values)
}

func TestIntervals_InvalidWidth(t *testing.T) {
	_, err := Intervals(uniformDistribution(3), 0, true)
	assert.True(t, errors.Is(err, stochastic.ErrInvalidArgument))
}

func TestIntervals_ZeroTotal(t *testing.T) {
	d := Distribution{Keys: []int64{0, 1}, Values: []float64{0, 0}}
	_, err := Intervals(d, 2, true)
	assert.True(t, errors.Is(err, stochastic.ErrEmptyDistribution))

	res, err := Intervals(d, 2, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, res.Values)
}
