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
	"testing"

	"github.com/0xsoniclabs/distlab/config"
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/0xsoniclabs/distlab/stochastic/generator"
	"github.com/0xsoniclabs/distlab/stochastic/visualizer"
	"github.com/0xsoniclabs/distlab/utils"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets_Labs(t *testing.T) {
	assert.Equal(t, []string{"lab1", "lab2", "lab3"}, PresetNames())

	lab1, err := LookupPreset("LAB1")
	require.NoError(t, err)
	assert.Equal(t, generator.CRandName, lab1.Config.Source)
	assert.Equal(t, stochastic.ValueRange{Low: 0, High: 10}, lab1.Config.ValueRange())
	assert.Equal(t, 0, lab1.Config.Intervals)
	assert.Equal(t, []visualizer.SliderSpec{{Label: "N", Min: 10, Max: 50000, Initial: 500, Step: 100}}, lab1.Sliders)

	lab2, err := LookupPreset("lab2")
	require.NoError(t, err)
	assert.Equal(t, generator.NormalName, lab2.Config.Source)
	assert.Equal(t, stochastic.ValueRange{Low: 0, High: 20}, lab2.Config.ValueRange())
	assert.Equal(t, 5, lab2.Config.Intervals)
	assert.Equal(t, visualizer.SliderSpec{Label: "Scale", Min: 0.5, Max: 6, Initial: 3, Step: 0.25}, lab2.Sliders[1])

	lab3, err := LookupPreset("lab3")
	require.NoError(t, err)
	assert.Equal(t, generator.ExponentialName, lab3.Config.Source)
	assert.Equal(t, stochastic.LambdaParam, lab3.Sliders[1].Name())

	for _, name := range PresetNames() {
		cfg := Presets[name].Config
		assert.NoError(t, cfg.Validate(), name)
		assert.Equal(t, name, cfg.Lab)
	}
}

func TestPresets_LabFlagNamesEveryPreset(t *testing.T) {
	for _, name := range PresetNames() {
		assert.Contains(t, utils.LabFlag.Usage, `"`+name+`"`)
	}
}

func TestPresets_LookupUnknown(t *testing.T) {
	_, err := LookupPreset("lab9")
	assert.True(t, errors.Is(err, stochastic.ErrInvalidArgument))

	p, err := LookupPreset("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), p.Config)
}

func TestPresets_SlidersFollowConfig(t *testing.T) {
	lab2 := Presets["lab2"]

	cfg := lab2.Config
	cfg.Samples = 80000
	cfg.Scale = 1.5
	sliders, err := lab2.SlidersFor(&cfg)
	require.NoError(t, err)
	require.Len(t, sliders, 2)
	assert.Equal(t, 80000.0, sliders[0].Initial)
	assert.Equal(t, 80000.0, sliders[0].Max)
	assert.Equal(t, 1.5, sliders[1].Initial)

	// a uniform source has no scale to steer
	cfg.Source = generator.UniformName
	sliders, err = lab2.SlidersFor(&cfg)
	require.NoError(t, err)
	require.Len(t, sliders, 1)
	assert.Equal(t, visualizer.SampleCountName, sliders[0].Name())

	// a normal source always gets one
	lab1 := Presets["lab1"]
	cfg = lab1.Config
	cfg.Source = generator.NormalName
	sliders, err = lab1.SlidersFor(&cfg)
	require.NoError(t, err)
	require.Len(t, sliders, 2)
	assert.Equal(t, stochastic.ScaleParam, sliders[1].Name())

	// switching lab2 to an exponential source trades scale for lambda
	cfg = lab2.Config
	cfg.Source = generator.ExponentialName
	cfg.Lambda = 2
	sliders, err = lab2.SlidersFor(&cfg)
	require.NoError(t, err)
	require.Len(t, sliders, 2)
	assert.Equal(t, stochastic.LambdaParam, sliders[1].Name())
	assert.Equal(t, 2.0, sliders[1].Initial)

	cfg.Source = "dice"
	_, err = lab2.SlidersFor(&cfg)
	assert.Error(t, err)
}

func TestPresets_NewGenerator(t *testing.T) {
	cfg := Presets["lab2"].Config
	gen, err := newGenerator(&cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, stochastic.Normal{Scale: stochastic.DefaultScale}, gen.Shape())
	assert.Equal(t, 5, gen.Intervals())

	cfg.Source = "dice"
	_, err = newGenerator(&cfg, nil)
	assert.Error(t, err)
}
