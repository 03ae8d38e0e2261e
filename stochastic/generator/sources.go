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
	"fmt"
	"math/rand"
	"strings"

	"github.com/0xsoniclabs/distlab/stochastic"
	exprand "golang.org/x/exp/rand"
)

// Names of the built-in random sources.
const (
	CRandName       = "crand"
	UniformName     = "uniform"
	NormalName      = "normal"
	ExponentialName = "exponential"
)

// SourceNames lists the built-in sources.
var SourceNames = []string{CRandName, UniformName, NormalName, ExponentialName}

// NewSource creates a built-in source with its own random state seeded by seed.
func NewSource(name string, seed int64) (stochastic.Source, error) {
	switch strings.ToLower(name) {
	case CRandName:
		return NewCRand(uint32(seed)), nil
	case UniformName:
		return NewUniformSource(rand.New(rand.NewSource(seed))), nil
	case NormalName:
		return NewNormalSource(exprand.NewSource(uint64(seed))), nil
	case ExponentialName:
		return NewExponentialSource(rand.New(rand.NewSource(seed))), nil
	}
	return nil, stochastic.InvalidArgumentf("unknown source %q (expected one of %v)", name, SourceNames)
}

// SourceKind returns the shape family a built-in source generates.
func SourceKind(name string) (stochastic.ShapeKind, error) {
	switch strings.ToLower(name) {
	case CRandName, UniformName:
		return stochastic.UniformKind, nil
	case NormalName:
		return stochastic.NormalKind, nil
	case ExponentialName:
		return stochastic.ExponentialKind, nil
	}
	return 0, stochastic.InvalidArgumentf("unknown source %q", name)
}

// Describe returns a human readable label of a source and shape.
func Describe(name string, shape stochastic.Shape) string {
	if len(shape.Params()) == 0 {
		return name
	}
	parts := []string{}
	for _, p := range stochastic.ParamNames(shape) {
		parts = append(parts, fmt.Sprintf("%s=%g", p, shape.Params()[p]))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}
