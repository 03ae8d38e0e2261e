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

package lab

import (
	"github.com/0xsoniclabs/distlab/config"
	"github.com/0xsoniclabs/distlab/stochastic/cache"
	"github.com/0xsoniclabs/distlab/stochastic/generator"
)

// newGenerator creates the generator described by cfg. The observer may be nil.
func newGenerator(cfg *config.Config, observer cache.Observer) (*generator.Generator, error) {
	src, err := generator.NewSource(cfg.Source, cfg.Seed)
	if err != nil {
		return nil, err
	}
	shape, err := cfg.Shape()
	if err != nil {
		return nil, err
	}
	rng := cfg.ValueRange()
	return generator.New(generator.Config{
		Range:     &rng,
		Source:    src,
		Shape:     shape,
		Intervals: cfg.Intervals,
		Observer:  observer,
	})
}
