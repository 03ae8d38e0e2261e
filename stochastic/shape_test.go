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

package stochastic

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_ParseShapeKind(t *testing.T) {
	kind, err := ParseShapeKind("Normal")
	require.NoError(t, err)
	assert.Equal(t, NormalKind, kind)

	kind, err = ParseShapeKind("uniform")
	require.NoError(t, err)
	assert.Equal(t, UniformKind, kind)

	_, err = ParseShapeKind("zipf")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestShape_DefaultShape(t *testing.T) {
	s, err := DefaultShape(NormalKind)
	require.NoError(t, err)
	assert.Equal(t, Normal{Scale: DefaultScale}, s)

	s, err = DefaultShape(UniformKind)
	require.NoError(t, err)
	assert.Equal(t, Uniform{}, s)

	s, err = DefaultShape(ExponentialKind)
	require.NoError(t, err)
	assert.Equal(t, Exponential{Lambda: DefaultLambda}, s)

	_, err = DefaultShape(ShapeKind(17))
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestShape_EqualIsExact(t *testing.T) {
	assert.True(t, Normal{Scale: 3}.Equal(Normal{Scale: 3}))
	assert.False(t, Normal{Scale: 3}.Equal(Normal{Scale: 3 + 1e-12}))
	assert.False(t, Normal{Scale: 3}.Equal(Uniform{}))
	assert.True(t, Uniform{}.Equal(Uniform{}))
	assert.False(t, Uniform{}.Equal(Normal{Scale: 1}))
	assert.True(t, Exponential{Lambda: 2}.Equal(Exponential{Lambda: 2}))
	assert.False(t, Exponential{Lambda: 2}.Equal(Normal{Scale: 2}))
}

func TestShape_With(t *testing.T) {
	s, err := Normal{Scale: 3}.With(ScaleParam, 5)
	require.NoError(t, err)
	assert.Equal(t, Normal{Scale: 5}, s)

	_, err = Normal{Scale: 3}.With("mean", 5)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Normal{Scale: 3}.With(ScaleParam, 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = Uniform{}.With(ScaleParam, 1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	s, err = Exponential{Lambda: 1}.With(LambdaParam, 0.5)
	require.NoError(t, err)
	assert.Equal(t, Exponential{Lambda: 0.5}, s)

	_, err = Exponential{Lambda: 1}.With(ScaleParam, 0.5)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestShape_ExponentialValidate(t *testing.T) {
	assert.NoError(t, Exponential{Lambda: 0.1}.Validate())
	for _, lambda := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		assert.True(t, errors.Is(Exponential{Lambda: lambda}.Validate(), ErrInvalidArgument), "lambda %v", lambda)
	}
}

func TestShape_NormalValidate(t *testing.T) {
	assert.NoError(t, Normal{Scale: 0.5}.Validate())
	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.True(t, errors.Is(Normal{Scale: scale}.Validate(), ErrInvalidArgument), "scale %v", scale)
	}
}

func TestShape_ParamNames(t *testing.T) {
	assert.Equal(t, []string{ScaleParam}, ParamNames(Normal{Scale: 1}))
	assert.Empty(t, ParamNames(Uniform{}))
}

func TestShape_KindString(t *testing.T) {
	assert.Equal(t, "uniform", UniformKind.String())
	assert.Equal(t, "normal", NormalKind.String())
	assert.Equal(t, "exponential", ExponentialKind.String())
	assert.Equal(t, "ShapeKind(9)", ShapeKind(9).String())
}

func TestShape_ApplyParams(t *testing.T) {
	s, err := ApplyParams(Normal{Scale: 3}, map[string]float64{ScaleParam: 4.5})
	require.NoError(t, err)
	assert.Equal(t, Normal{Scale: 4.5}, s)

	s, err = ApplyParams(Uniform{}, nil)
	require.NoError(t, err)
	assert.Equal(t, Uniform{}, s)

	_, err = ApplyParams(Uniform{}, map[string]float64{ScaleParam: 1})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
