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

package visualizer

import (
	"context"
	"math"

	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/0xsoniclabs/distlab/stochastic/statistics/distribution"
)

//go:generate mockgen -source sink.go -destination sink_mock.go -package visualizer

// Handler receives the full slider state after a slider was moved.
type Handler func(values map[string]float64) error

// Sink is a passive display surface.
type Sink interface {
	// Build constructs all series and axes for the first frame.
	Build(layout Layout, frame Frame) error
	// Update replaces the data of the existing series.
	Update(frame Frame) error
	// Run blocks in the display loop and delivers slider changes one at a time.
	Run(ctx context.Context, handler Handler) error
}

// Layout is the static part of a view.
type Layout struct {
	Title         string
	Range         stochastic.ValueRange
	IntervalWidth int
	Sliders       []SliderSpec
	Values        map[string]float64
}

// Frame is the data of one redraw.
type Frame struct {
	Series    [][2]float64         `json:"series"`
	Intervals [][2]float64         `json:"intervals,omitempty"`
	ECDF      [][2]float64         `json:"ecdf,omitempty"`
	YLimit    float64              `json:"ylimit"`
	Samples   int                  `json:"samples"`
	Values    map[string]float64   `json:"values"`
	Summary   distribution.Summary `json:"summary"`
}

// YLimit returns twice the largest value across all series, capped at one.
func YLimit(series ...[][2]float64) float64 {
	max := 0.0
	for _, s := range series {
		for _, p := range s {
			max = math.Max(max, p[1])
		}
	}
	return math.Min(1.0, 2*max)
}
