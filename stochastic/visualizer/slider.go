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
	"math"
	"strings"

	"github.com/0xsoniclabs/distlab/stochastic"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SampleCountName is the slider name steering the number of samples.
const SampleCountName = "n"

var lower = cases.Lower(language.Und)

// SliderSpec describes one interactive control. The lower-cased label names the
// generator parameter the slider steers.
type SliderSpec struct {
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Initial float64 `json:"initial"`
	Step    float64 `json:"step"`
}

// Name returns the parameter name of the slider.
func (s SliderSpec) Name() string {
	return lower.String(strings.TrimSpace(s.Label))
}

// Validate checks bounds, step and initial value of the slider.
func (s SliderSpec) Validate() error {
	if s.Name() == "" {
		return stochastic.InvalidArgumentf("slider without label")
	}
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min > s.Max {
		return stochastic.InvalidArgumentf("slider %q has invalid bounds [%v, %v]", s.Label, s.Min, s.Max)
	}
	if !(s.Step > 0) {
		return stochastic.InvalidArgumentf("slider %q has non-positive step %v", s.Label, s.Step)
	}
	if s.Initial < s.Min || s.Initial > s.Max {
		return stochastic.InvalidArgumentf("slider %q initial value %v outside [%v, %v]", s.Label, s.Initial, s.Min, s.Max)
	}
	return nil
}

// Clamp limits v to the slider bounds and snaps it onto the step grid starting at Min.
func (s SliderSpec) Clamp(v float64) float64 {
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Step <= 0 {
		return v
	}
	snapped := s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	if snapped > s.Max {
		snapped -= s.Step
	}
	return snapped
}

// validateSliders checks every slider and that each one names either the sample
// count or a parameter of shape.
func validateSliders(sliders []SliderSpec, shape stochastic.Shape) error {
	params := shape.Params()
	seen := map[string]bool{}
	for _, s := range sliders {
		if err := s.Validate(); err != nil {
			return err
		}
		name := s.Name()
		if seen[name] {
			return stochastic.InvalidArgumentf("duplicate slider %q", name)
		}
		seen[name] = true
		if name == SampleCountName {
			if s.Min < 0 {
				return stochastic.InvalidArgumentf("sample count slider must not go below zero")
			}
			continue
		}
		if _, ok := params[name]; !ok {
			return stochastic.InvalidArgumentf("slider %q does not match any parameter of %v generators", s.Label, shape.Kind())
		}
	}
	return nil
}
