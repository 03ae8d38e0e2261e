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
	"math/rand"

	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/0xsoniclabs/distlab/stochastic/cache"
	"github.com/0xsoniclabs/distlab/stochastic/statistics/distribution"
)

// Config describes a parameterized generator.
type Config struct {
	Range     *stochastic.ValueRange // value range of the distribution domain
	Source    stochastic.Source      // external random source; uniform if nil
	Shape     stochastic.Shape       // initial shape; uniform if nil
	Intervals int                    // sliding window width, zero disables interval distributions
	Observer  cache.Observer         // optional cache observer
}

// Result is one computed distribution together with its optional interval distribution.
type Result struct {
	Distribution distribution.Distribution
	Intervals    *distribution.Distribution
	Summary      distribution.Summary
}

// Generator combines a sample cache with the distribution estimator. A change of
// shape invalidates all cached samples since they were drawn under other parameters.
type Generator struct {
	rng       stochastic.ValueRange
	shape     stochastic.Shape
	intervals int
	cache     *cache.SampleCache
}

// New creates a generator. Either a range or a source must be given, and the
// distribution domain requires a range in any case.
func New(cfg Config) (*Generator, error) {
	if cfg.Range == nil && cfg.Source == nil {
		return nil, stochastic.InvalidArgumentf("either a source or a value range must be specified")
	}
	if cfg.Range == nil {
		return nil, stochastic.InvalidArgumentf("a value range is required to compute distributions")
	}
	if err := cfg.Range.Validate(); err != nil {
		return nil, err
	}
	if cfg.Intervals < 0 {
		return nil, stochastic.InvalidArgumentf("negative interval width %d", cfg.Intervals)
	}

	shape := cfg.Shape
	if shape == nil {
		shape = stochastic.Uniform{}
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	src := cfg.Source
	if src == nil {
		if shape.Kind() != stochastic.UniformKind {
			return nil, stochastic.InvalidArgumentf("a %v shape requires an explicit source", shape.Kind())
		}
		src = NewUniformSource(rand.New(rand.NewSource(stochastic.DefaultSeed)))
	}

	var opts []cache.Option
	if cfg.Observer != nil {
		opts = append(opts, cache.WithObserver(cfg.Observer))
	}
	c, err := cache.New(*cfg.Range, src, opts...)
	if err != nil {
		return nil, err
	}

	return &Generator{
		rng:       *cfg.Range,
		shape:     shape,
		intervals: cfg.Intervals,
		cache:     c,
	}, nil
}

// GetDistribution returns the distribution of the first n samples drawn under shape.
// A nil shape keeps the current one. If shape differs from the current shape, the
// cache is regenerated from scratch.
func (g *Generator) GetDistribution(n int, normalize bool, shape stochastic.Shape) (Result, error) {
	if shape == nil {
		shape = g.shape
	}
	if shape.Kind() != g.shape.Kind() {
		return Result{}, stochastic.InvalidArgumentf("generator produces %v samples, got %v shape", g.shape.Kind(), shape.Kind())
	}
	if err := shape.Validate(); err != nil {
		return Result{}, err
	}

	reset := !shape.Equal(g.shape)
	samples, err := g.cache.Ensure(n, shape, reset)
	if err != nil {
		return Result{}, err
	}
	// the new shape only becomes current once samples under it exist
	g.shape = shape

	d, err := distribution.Compute(samples, g.rng, normalize)
	if err != nil {
		return Result{}, err
	}
	res := Result{Distribution: d}

	if g.intervals > 0 {
		intervals, err := distribution.Intervals(d, g.intervals, normalize)
		if err != nil {
			return Result{}, err
		}
		res.Intervals = &intervals
	}

	if len(samples) > 0 {
		if res.Summary, err = distribution.Summarize(samples); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// Range returns the value range of the generator.
func (g *Generator) Range() stochastic.ValueRange {
	return g.rng
}

// Shape returns the shape of the currently cached samples.
func (g *Generator) Shape() stochastic.Shape {
	return g.shape
}

// Intervals returns the interval width, zero if interval distributions are disabled.
func (g *Generator) Intervals() int {
	return g.intervals
}

// Samples returns the number of cached samples.
func (g *Generator) Samples() int {
	return g.cache.Len()
}

// SourceCalls returns the number of external source invocations so far.
func (g *Generator) SourceCalls() int {
	return g.cache.Calls()
}
