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
	"fmt"
	"math"
	"sort"
	"strings"
)

// ShapeKind enumerates the generator families.
type ShapeKind int

const (
	UniformKind     ShapeKind = iota // flat distribution over the value range
	NormalKind                       // bell-shaped distribution centred in the value range
	ExponentialKind                  // truncated exponential decay from the low end of the range
)

// Parameter names of the shaped generator families.
const (
	ScaleParam  = "scale"
	LambdaParam = "lambda"
)

var shapeKindNames = map[ShapeKind]string{
	UniformKind:     "uniform",
	NormalKind:      "normal",
	ExponentialKind: "exponential",
}

func (k ShapeKind) String() string {
	if name, ok := shapeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// ParseShapeKind converts a family name into a ShapeKind.
func ParseShapeKind(name string) (ShapeKind, error) {
	for kind, n := range shapeKindNames {
		if strings.EqualFold(n, name) {
			return kind, nil
		}
	}
	return 0, InvalidArgumentf("unknown generator kind %q", name)
}

// Shape is the parameter set of a generator family beyond its value range.
// Two shapes are equal iff they are of the same kind and all parameters match exactly.
type Shape interface {
	Kind() ShapeKind
	// Params returns the named parameters of the shape.
	Params() map[string]float64
	// Equal compares shapes by exact numeric equality.
	Equal(other Shape) bool
	// With returns a copy of the shape with one parameter replaced.
	With(name string, value float64) (Shape, error)
	// Validate checks the parameter values.
	Validate() error
}

// DefaultShape returns the initial shape of a generator family.
func DefaultShape(kind ShapeKind) (Shape, error) {
	switch kind {
	case UniformKind:
		return Uniform{}, nil
	case NormalKind:
		return Normal{Scale: DefaultScale}, nil
	case ExponentialKind:
		return Exponential{Lambda: DefaultLambda}, nil
	}
	return nil, InvalidArgumentf("unknown generator kind %v", kind)
}

// ParamNames returns the sorted parameter names of a shape.
func ParamNames(s Shape) []string {
	names := make([]string, 0, len(s.Params()))
	for name := range s.Params() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Uniform has no parameters.
type Uniform struct{}

func (Uniform) Kind() ShapeKind { return UniformKind }

func (Uniform) Params() map[string]float64 { return map[string]float64{} }

func (u Uniform) Equal(other Shape) bool {
	_, ok := other.(Uniform)
	return ok
}

func (u Uniform) With(name string, _ float64) (Shape, error) {
	return nil, InvalidArgumentf("uniform generators have no parameter %q", name)
}

func (Uniform) Validate() error { return nil }

func (Uniform) String() string { return "uniform" }

// Normal is parameterised by its standard deviation.
type Normal struct {
	Scale float64
}

func (Normal) Kind() ShapeKind { return NormalKind }

func (n Normal) Params() map[string]float64 {
	return map[string]float64{ScaleParam: n.Scale}
}

func (n Normal) Equal(other Shape) bool {
	o, ok := other.(Normal)
	return ok && o.Scale == n.Scale
}

func (n Normal) With(name string, value float64) (Shape, error) {
	if name != ScaleParam {
		return nil, InvalidArgumentf("normal generators have no parameter %q", name)
	}
	res := Normal{Scale: value}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func (n Normal) Validate() error {
	if !(n.Scale > 0) || math.IsInf(n.Scale, 0) {
		return InvalidArgumentf("scale must be a positive number, got %v", n.Scale)
	}
	return nil
}

func (n Normal) String() string { return fmt.Sprintf("normal(scale=%v)", n.Scale) }

// Exponential is parameterised by its decay rate.
type Exponential struct {
	Lambda float64
}

func (Exponential) Kind() ShapeKind { return ExponentialKind }

func (e Exponential) Params() map[string]float64 {
	return map[string]float64{LambdaParam: e.Lambda}
}

func (e Exponential) Equal(other Shape) bool {
	o, ok := other.(Exponential)
	return ok && o.Lambda == e.Lambda
}

func (e Exponential) With(name string, value float64) (Shape, error) {
	if name != LambdaParam {
		return nil, InvalidArgumentf("exponential generators have no parameter %q", name)
	}
	res := Exponential{Lambda: value}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func (e Exponential) Validate() error {
	if !(e.Lambda > 0) || math.IsInf(e.Lambda, 0) {
		return InvalidArgumentf("lambda must be a positive number, got %v", e.Lambda)
	}
	return nil
}

func (e Exponential) String() string { return fmt.Sprintf("exponential(lambda=%v)", e.Lambda) }

// ApplyParams returns shape with every named parameter replaced.
func ApplyParams(shape Shape, params map[string]float64) (Shape, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	res := shape
	for _, name := range names {
		next, err := res.With(name, params[name])
		if err != nil {
			return nil, err
		}
		res = next
	}
	return res, nil
}
