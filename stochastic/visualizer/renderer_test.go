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
	"bytes"
	"testing"

	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame() Frame {
	series := [][2]float64{{0, 0.2}, {1, 0.5}, {2, 0.3}}
	return Frame{
		Series:    series,
		Intervals: [][2]float64{{0, 0.6}, {1, 0.4}},
		ECDF:      [][2]float64{{0, 0.2}, {1, 0.7}, {2, 1}},
		YLimit:    YLimit(series),
		Samples:   10,
		Values:    map[string]float64{"n": 10},
	}
}

func TestRenderer_RenderPage(t *testing.T) {
	layout := Layout{
		Title:   "Lab 1",
		Range:   stochastic.ValueRange{Low: 0, High: 3},
		Sliders: []SliderSpec{samplesSlider},
	}
	var buf bytes.Buffer
	require.NoError(t, renderPage(&buf, layout, testFrame()))

	page := buf.String()
	assert.Contains(t, page, "Lab 1")
	assert.Contains(t, page, `id="`+distributionChartID+`"`)
	assert.Contains(t, page, `id="`+ecdfChartID+`"`)
	assert.NotContains(t, page, `id="`+intervalsChartID+`"`)
	assert.Contains(t, page, `"name":"n"`)
	assert.Contains(t, page, eventsPath)
	assert.NotContains(t, page, configPlaceholder)
}

func TestRenderer_RenderPageWithIntervals(t *testing.T) {
	layout := Layout{
		Range:         stochastic.ValueRange{Low: 0, High: 3},
		IntervalWidth: 2,
		Sliders:       []SliderSpec{samplesSlider},
	}
	var buf bytes.Buffer
	require.NoError(t, renderPage(&buf, layout, testFrame()))
	assert.Contains(t, buf.String(), `id="`+intervalsChartID+`"`)
	assert.Contains(t, buf.String(), "Intervals of width 2")
}

func TestRenderer_IntervalsChartHasTrendLine(t *testing.T) {
	frame := testFrame()
	chart := newIntervalsChart(Layout{IntervalWidth: 2}, frame)
	require.Len(t, chart.MultiSeries, 2)
	assert.Equal(t, "bar", chart.MultiSeries[0].Type)

	trend := chart.MultiSeries[1]
	assert.Equal(t, "line", trend.Type)
	require.NotNil(t, trend.LineStyle)
	assert.Equal(t, "dashed", trend.LineStyle.Type)
	assert.Equal(t, "red", trend.LineStyle.Color)
}

func TestRenderer_ConvertData(t *testing.T) {
	data := [][2]float64{{-1, 0.25}, {3, 0.75}}
	assert.Equal(t, []string{"-1", "3"}, convertLabels(data))

	bars := convertBarData(data)
	require.Len(t, bars, 2)
	assert.Equal(t, 0.75, bars[1].Value)

	points := convertPointData(data)
	require.Len(t, points, 2)
	assert.Equal(t, [2]float64{-1, 0.25}, points[0].Value)
}

func TestRenderer_ControlScriptCarriesSliders(t *testing.T) {
	layout := Layout{Sliders: []SliderSpec{samplesSlider, scaleSlider}, IntervalWidth: 5}
	script, err := newControlScript(layout, map[string]float64{"n": 500, "scale": 3})
	require.NoError(t, err)
	assert.Contains(t, script, `"label":"Scale"`)
	assert.Contains(t, script, `"name":"scale"`)
	assert.Contains(t, script, `"intervals":"`+intervalsChartID+`"`)
	assert.Contains(t, script, `"values":{"n":500,"scale":3}`)
}
