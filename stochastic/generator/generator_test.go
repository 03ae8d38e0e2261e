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
	"testing"

	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func rangeOf(low, high int64) *stochastic.ValueRange {
	return &stochastic.ValueRange{Low: low, High: high}
}

func TestGenerator_NewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"neither range nor source", Config{}},
		{"source without range", Config{Source: NewCRand(1)}},
		{"empty range", Config{Range: rangeOf(4, 4)}},
		{"overflowing range", Config{Range: rangeOf(math.MinInt64/2-10, math.MaxInt64/2+10)}},
		{"too wide range", Config{Range: rangeOf(0, stochastic.MaxRangeLen+1)}},
		{"negative intervals", Config{Range: rangeOf(0, 4), Intervals: -1}},
		{"invalid shape", Config{Range: rangeOf(0, 4), Source: NewCRand(1), Shape: stochastic.Normal{}}},
		{"normal without source", Config{Range: rangeOf(0, 4), Shape: stochastic.Normal{Scale: 1}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.cfg)
			assert.True(t, errors.Is(err, stochastic.ErrInvalidArgument), "unexpected error %v", err)
		})
	}
}

func TestGenerator_DefaultsToUniformSource(t *testing.T) {
	g, err := New(Config{Range: rangeOf(0, 6)})
	require.NoError(t, err)
	assert.Equal(t, stochastic.Uniform{}, g.Shape())

	res, err := g.GetDistribution(600, true, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, res.Distribution.Keys)
	assert.InDelta(t, 1.0, res.Distribution.Sum(), 1e-9)
	assert.Nil(t, res.Intervals)
	assert.Equal(t, 600, res.Summary.Count)
}

func TestGenerator_ConcreteScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := stochastic.NewMockSource(ctrl)
	g, err := New(Config{Range: rangeOf(0, 10), Source: src})
	require.NoError(t, err)

	src.EXPECT().Generate(*rangeOf(0, 10), 10, stochastic.Uniform{}).
		Return([]int64{1, 1, 2, 3, 3, 3, 5, 7, 7, 9}, nil)

	res, err := g.GetDistribution(10, true, nil)
	require.NoError(t, err)
	want := []float64{0, 0.2, 0.1, 0.3, 0, 0.1, 0, 0.2, 0, 0.1}
	assert.InDeltaSlice(t, want, res.Distribution.Values, 1e-12)
}

func TestGenerator_ShapeChangeInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := stochastic.NewMockSource(ctrl)
	rng := rangeOf(0, 20)
	g, err := New(Config{Range: rng, Source: src, Shape: stochastic.Normal{Scale: 3}})
	require.NoError(t, err)

	gomock.InOrder(
		src.EXPECT().Generate(*rng, 4, stochastic.Normal{Scale: 3}).Return([]int64{9, 10, 10, 11}, nil),
		src.EXPECT().Generate(*rng, 4, stochastic.Normal{Scale: 5}).Return([]int64{5, 10, 15, 19}, nil),
	)

	_, err = g.GetDistribution(4, true, stochastic.Normal{Scale: 3})
	require.NoError(t, err)
	res, err := g.GetDistribution(4, true, stochastic.Normal{Scale: 5})
	require.NoError(t, err)

	assert.Equal(t, stochastic.Normal{Scale: 5}, g.Shape())
	v, _ := res.Distribution.Get(15)
	assert.Equal(t, 0.25, v)
	assert.Equal(t, 2, g.SourceCalls())
}

func TestGenerator_SameShapeReusesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := stochastic.NewMockSource(ctrl)
	g, err := New(Config{Range: rangeOf(0, 20), Source: src, Shape: stochastic.Normal{Scale: 3}})
	require.NoError(t, err)

	src.EXPECT().Generate(gomock.Any(), 8, stochastic.Normal{Scale: 3}).
		Return([]int64{1, 2, 3, 4, 5, 6, 7, 8}, nil).Times(1)

	_, err = g.GetDistribution(8, true, stochastic.Normal{Scale: 3})
	require.NoError(t, err)
	_, err = g.GetDistribution(5, true, nil)
	require.NoError(t, err)
	_, err = g.GetDistribution(8, false, stochastic.Normal{Scale: 3})
	require.NoError(t, err)
	assert.Equal(t, 8, g.Samples())
}

func TestGenerator_FailedShapeChangeKeepsOldShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := stochastic.NewMockSource(ctrl)
	rng := rangeOf(0, 20)
	g, err := New(Config{Range: rng, Source: src, Shape: stochastic.Normal{Scale: 3}})
	require.NoError(t, err)
	cause := errors.New("source down")

	gomock.InOrder(
		src.EXPECT().Generate(*rng, 2, stochastic.Normal{Scale: 3}).Return([]int64{10, 10}, nil),
		src.EXPECT().Generate(*rng, 2, stochastic.Normal{Scale: 4}).Return(nil, cause),
		src.EXPECT().Generate(*rng, 2, stochastic.Normal{Scale: 4}).Return([]int64{3, 4}, nil),
	)

	_, err = g.GetDistribution(2, true, nil)
	require.NoError(t, err)

	_, err = g.GetDistribution(2, true, stochastic.Normal{Scale: 4})
	assert.True(t, errors.Is(err, stochastic.ErrGeneratorFailure))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, stochastic.Normal{Scale: 3}, g.Shape())
	assert.Equal(t, 2, g.Samples())

	// retrying the new shape must not reuse samples of the old one
	res, err := g.GetDistribution(2, true, stochastic.Normal{Scale: 4})
	require.NoError(t, err)
	v, _ := res.Distribution.Get(3)
	assert.Equal(t, 0.5, v)
}

func TestGenerator_AttachesIntervals(t *testing.T) {
	src := stochastic.SourceFunc(func(rng stochastic.ValueRange, n int, _ stochastic.Shape) ([]int64, error) {
		res := make([]int64, n)
		for i := range res {
			res[i] = rng.Low + int64(i)%int64(rng.Len())
		}
		return res, nil
	})
	g, err := New(Config{Range: rangeOf(0, 20), Source: src, Intervals: stochastic.DefaultIntervalWidth})
	require.NoError(t, err)
	assert.Equal(t, 5, g.Intervals())

	res, err := g.GetDistribution(200, true, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Intervals)
	assert.Equal(t, res.Distribution.Keys, res.Intervals.Keys)
	assert.InDelta(t, 1.0, res.Intervals.Sum(), 1e-9)
	assert.Greater(t, res.Intervals.Values[0], res.Intervals.Values[19])
}

func TestGenerator_ErrorsBubble(t *testing.T) {
	g, err := New(Config{Range: rangeOf(0, 10), Source: NewCRand(1)})
	require.NoError(t, err)

	_, err = g.GetDistribution(-3, true, nil)
	assert.True(t, errors.Is(err, stochastic.ErrInvalidArgument))

	_, err = g.GetDistribution(0, true, nil)
	assert.True(t, errors.Is(err, stochastic.ErrEmptyDistribution))

	_, err = g.GetDistribution(3, true, stochastic.Normal{Scale: 2})
	assert.True(t, errors.Is(err, stochastic.ErrInvalidArgument))
	assert.Equal(t, stochastic.ValueRange{Low: 0, High: 10}, g.Range())
}
