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

package cache

import (
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/cockroachdb/errors"
)

// Observer is notified whenever the cache calls the source or discards samples.
type Observer interface {
	Generated(n int)
	Failed(requested int)
	Reset(discarded int)
}

// Option configures a SampleCache.
type Option func(*SampleCache)

// WithObserver registers an observer for generation and reset events.
func WithObserver(o Observer) Option {
	return func(c *SampleCache) {
		c.observer = o
	}
}

// SampleCache holds the growing sample sequence of one generator configuration.
// Samples already drawn are never drawn again unless a reset is forced.
type SampleCache struct {
	rng      stochastic.ValueRange
	src      stochastic.Source
	samples  []int64
	calls    int
	observer Observer
}

// New creates an empty cache drawing from src over rng.
func New(rng stochastic.ValueRange, src stochastic.Source, opts ...Option) (*SampleCache, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, stochastic.InvalidArgumentf("sample cache requires a source")
	}
	c := &SampleCache{rng: rng, src: src}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Ensure returns the first n samples, drawing only the missing ones from the source.
// If force is set, all cached samples are discarded first. The returned slice aliases
// the cache and must not be modified. On failure the cache is left untouched.
func (c *SampleCache) Ensure(n int, shape stochastic.Shape, force bool) ([]int64, error) {
	if n < 0 {
		return nil, stochastic.InvalidArgumentf("negative sample count %d", n)
	}

	base := c.samples
	if force {
		base = nil
	}
	if n <= len(base) {
		c.commit(base, force)
		return c.samples[:n], nil
	}

	missing := n - len(base)
	fresh, err := c.src.Generate(c.rng, missing, shape)
	c.calls++
	if err == nil && len(fresh) != missing {
		err = errors.Newf("source returned %d samples", len(fresh))
	}
	if err != nil {
		if c.observer != nil {
			c.observer.Failed(missing)
		}
		return nil, stochastic.GeneratorFailure(err, "generate %d samples over %v", missing, c.rng)
	}

	c.commit(append(base, fresh...), force)
	if c.observer != nil {
		c.observer.Generated(missing)
	}
	return c.samples, nil
}

func (c *SampleCache) commit(samples []int64, reset bool) {
	if reset && c.observer != nil {
		c.observer.Reset(len(c.samples))
	}
	c.samples = samples
}

// Reset discards all cached samples.
func (c *SampleCache) Reset() {
	c.commit(nil, true)
}

// Len returns the number of cached samples.
func (c *SampleCache) Len() int {
	return len(c.samples)
}

// Calls returns how often the source has been invoked.
func (c *SampleCache) Calls() int {
	return c.calls
}

// Range returns the value range samples are drawn from.
func (c *SampleCache) Range() stochastic.ValueRange {
	return c.rng
}
