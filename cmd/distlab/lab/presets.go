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
	"math"
	"sort"
	"strings"

	"github.com/0xsoniclabs/distlab/config"
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/0xsoniclabs/distlab/stochastic/generator"
	"github.com/0xsoniclabs/distlab/stochastic/visualizer"
)

// Preset is a ready-made exercise: generator settings plus the sliders shown with it.
type Preset struct {
	Name        string
	Title       string
	Description string
	Config      config.Config
	Sliders     []visualizer.SliderSpec
}

var (
	samplesSlider = visualizer.SliderSpec{Label: "N", Min: 10, Max: 50000, Initial: stochastic.DefaultSamples, Step: 100}
	scaleSlider   = visualizer.SliderSpec{Label: "Scale", Min: 0.5, Max: 6, Initial: stochastic.DefaultScale, Step: 0.25}
	lambdaSlider  = visualizer.SliderSpec{Label: "Lambda", Min: 0.1, Max: 10, Initial: stochastic.DefaultLambda, Step: 0.1}

	// paramSliders is the slider offered for each shape parameter.
	paramSliders = map[string]visualizer.SliderSpec{
		stochastic.ScaleParam:  scaleSlider,
		stochastic.LambdaParam: lambdaSlider,
	}
)

// Presets lists the built-in exercises by name.
var Presets = map[string]Preset{
	"lab1": {
		Name:        "lab1",
		Title:       "Uniform C rand() on [0, 10)",
		Description: "distribution of the C library generator reduced by modulo",
		Config:      newLabConfig("lab1", nil),
		Sliders:     []visualizer.SliderSpec{samplesSlider},
	},
	"lab2": {
		Name:        "lab2",
		Title:       "Normal distribution on [0, 20)",
		Description: "rounded normal samples centered in the range, with interval distribution",
		Config: newLabConfig("lab2", func(cfg *config.Config) {
			cfg.Source = generator.NormalName
			cfg.High = 20
			cfg.Intervals = stochastic.DefaultIntervalWidth
		}),
		Sliders: []visualizer.SliderSpec{samplesSlider, scaleSlider},
	},
	"lab3": {
		Name:        "lab3",
		Title:       "Exponential distribution on [0, 20)",
		Description: "samples decaying from the low end at rate lambda, with interval distribution",
		Config: newLabConfig("lab3", func(cfg *config.Config) {
			cfg.Source = generator.ExponentialName
			cfg.High = 20
			cfg.Intervals = stochastic.DefaultIntervalWidth
		}),
		Sliders: []visualizer.SliderSpec{samplesSlider, lambdaSlider},
	},
}

func newLabConfig(name string, adjust func(*config.Config)) config.Config {
	cfg := config.DefaultConfig()
	cfg.Lab = name
	if adjust != nil {
		adjust(&cfg)
	}
	return cfg
}

// PresetNames returns the sorted names of all presets.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPreset returns the preset called name. An empty name selects a preset
// made of the default settings.
func LookupPreset(name string) (Preset, error) {
	if name == "" {
		return Preset{
			Title:   "Distribution",
			Config:  config.DefaultConfig(),
			Sliders: []visualizer.SliderSpec{samplesSlider},
		}, nil
	}
	p, ok := Presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, stochastic.InvalidArgumentf("unknown lab %q (expected one of %v)", name, PresetNames())
	}
	return p, nil
}

// SlidersFor adapts the sliders of p to cfg: initial values follow the
// configuration and every parameter of the configured shape gets exactly one
// slider. Sliders for parameters the shape does not have are dropped.
func (p Preset) SlidersFor(cfg *config.Config) ([]visualizer.SliderSpec, error) {
	shape, err := cfg.Shape()
	if err != nil {
		return nil, err
	}
	params := shape.Params()

	res := make([]visualizer.SliderSpec, 0, len(p.Sliders)+len(params))
	seen := make(map[string]bool)
	for _, s := range p.Sliders {
		name := s.Name()
		if name == visualizer.SampleCountName {
			res = append(res, withInitial(s, float64(cfg.Samples)))
			continue
		}
		v, ok := params[name]
		if !ok {
			continue
		}
		seen[name] = true
		res = append(res, withInitial(s, v))
	}
	for _, name := range stochastic.ParamNames(shape) {
		if seen[name] {
			continue
		}
		s, ok := paramSliders[name]
		if !ok {
			return nil, stochastic.InvalidArgumentf("no slider known for parameter %q", name)
		}
		res = append(res, withInitial(s, params[name]))
	}
	return res, nil
}

// withInitial sets the initial value of s, widening its bounds if needed.
func withInitial(s visualizer.SliderSpec, v float64) visualizer.SliderSpec {
	s.Initial = v
	s.Min = math.Min(s.Min, v)
	s.Max = math.Max(s.Max, v)
	return s
}
