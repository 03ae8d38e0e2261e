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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// DOM ids of the rendered charts.
const (
	distributionChartID = "distribution"
	intervalsChartID    = "intervals"
	ecdfChartID         = "ecdf"
)

const configPlaceholder = "__DISTLAB_CONFIG__"

// controlScript adds the slider panel and keeps the charts in sync with the
// frames pushed over the event socket. At most one change is in flight, later
// moves only update the pending state.
const controlScript = `(function() {
  var cfg = __DISTLAB_CONFIG__;
  var chart = function(id) { var el = document.getElementById(id); return el ? echarts.getInstanceByDom(el) : null; };
  var ys = function(points) { return (points || []).map(function(p) { return p[1]; }); };
  var xs = function(points) { return (points || []).map(function(p) { return String(p[0]); }); };
  var state = Object.assign({}, cfg.values);
  var panel = document.createElement('div');
  panel.id = 'sliders';
  var status = document.createElement('div');
  status.id = 'status';
  cfg.sliders.forEach(function(s) {
    var row = document.createElement('div');
    var label = document.createElement('label');
    var input = document.createElement('input');
    var shown = document.createElement('span');
    input.type = 'range';
    input.min = s.min; input.max = s.max; input.step = s.step; input.value = state[s.name];
    input.dataset.name = s.name;
    label.textContent = s.label + ' ';
    shown.textContent = ' ' + state[s.name];
    input.addEventListener('input', function() {
      state[s.name] = parseFloat(input.value);
      shown.textContent = ' ' + input.value;
      send();
    });
    row.appendChild(label); row.appendChild(input); row.appendChild(shown);
    panel.appendChild(row);
  });
  panel.appendChild(status);
  document.body.insertBefore(panel, document.body.firstChild);

  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(proto + location.host + cfg.events);
  var busy = false, dirty = false;
  function send() {
    if (busy || ws.readyState !== WebSocket.OPEN) { dirty = true; return; }
    busy = true; dirty = false;
    ws.send(JSON.stringify({values: state}));
  }
  ws.onopen = function() { if (dirty) { send(); } };
  ws.onmessage = function(msg) {
    var data = JSON.parse(msg.data);
    if (data.error) {
      status.textContent = data.error;
    } else if (data.frame) {
      status.textContent = '';
      apply(data.frame);
    }
    if (data.reply) { busy = false; if (dirty) { send(); } }
  };
  function apply(f) {
    var dist = chart(cfg.distribution);
    if (dist) {
      dist.setOption({
        title: {subtext: f.samples + ' samples'},
        xAxis: [{data: xs(f.series)}],
        yAxis: [{max: f.ylimit}],
        series: [{data: ys(f.series)}, {data: ys(f.series)}]
      });
    }
    var iv = chart(cfg.intervals);
    if (iv && f.intervals) {
      iv.setOption({xAxis: [{data: xs(f.intervals)}], yAxis: [{max: f.ylimit}], series: [{data: ys(f.intervals)}, {data: ys(f.intervals)}]});
    }
    var ecdf = chart(cfg.ecdf);
    if (ecdf && f.ecdf) {
      ecdf.setOption({series: [{data: f.ecdf}]});
    }
  }
})();`

type sliderConfig struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
}

type pageConfig struct {
	Distribution string             `json:"distribution"`
	Intervals    string             `json:"intervals,omitempty"`
	ECDF         string             `json:"ecdf"`
	Events       string             `json:"events"`
	Sliders      []sliderConfig     `json:"sliders"`
	Values       map[string]float64 `json:"values"`
}

func newControlScript(layout Layout, values map[string]float64) (string, error) {
	cfg := pageConfig{
		Distribution: distributionChartID,
		ECDF:         ecdfChartID,
		Events:       eventsPath,
		Sliders:      make([]sliderConfig, 0, len(layout.Sliders)),
		Values:       values,
	}
	if layout.IntervalWidth > 0 {
		cfg.Intervals = intervalsChartID
	}
	for _, s := range layout.Sliders {
		cfg.Sliders = append(cfg.Sliders, sliderConfig{
			Name:  s.Name(),
			Label: s.Label,
			Min:   s.Min,
			Max:   s.Max,
			Step:  s.Step,
		})
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return strings.Replace(controlScript, configPlaceholder, string(data), 1), nil
}

func toolboxOpts() charts.GlobalOpts {
	return charts.WithToolboxOpts(opts.Toolbox{
		Show: true,
		Feature: &opts.ToolBoxFeature{
			SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
				Show:  true,
				Title: "Save",
			},
			DataZoom: &opts.ToolBoxFeatureDataZoom{
				Show: true,
			},
		},
	})
}

// convertLabels produces the category labels of a series.
func convertLabels(data [][2]float64) []string {
	items := make([]string, 0, len(data))
	for _, p := range data {
		items = append(items, strconv.FormatInt(int64(p[0]), 10))
	}
	return items
}

func convertBarData(data [][2]float64) []opts.BarData {
	items := make([]opts.BarData, 0, len(data))
	for _, p := range data {
		items = append(items, opts.BarData{Value: p[1]})
	}
	return items
}

func convertTrendData(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, p := range data {
		items = append(items, opts.LineData{Value: p[1]})
	}
	return items
}

// convertPointData keeps both coordinates for charts on a value axis.
func convertPointData(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newDistributionChart creates the probability bars with a dashed trend line on top.
func newDistributionChart(layout Layout, frame Frame) *charts.Bar {
	title := layout.Title
	if title == "" {
		title = "Distribution"
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:   types.ThemeChalk,
			ChartID: distributionChartID,
		}),
		toolboxOpts(),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d samples", frame.Samples),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Probability", Min: 0, Max: frame.YLimit}),
	)
	labels := convertLabels(frame.Series)
	bar.SetXAxis(labels).AddSeries("Probability", convertBarData(frame.Series),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#5470c6"}))

	trend := charts.NewLine()
	trend.SetXAxis(labels).AddSeries("Trend", convertTrendData(frame.Series),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "red", Width: 2, Type: "dashed"}))
	bar.Overlap(trend)
	return bar
}

// newIntervalsChart creates the bars of the sliding window distribution.
func newIntervalsChart(layout Layout, frame Frame) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:   types.ThemeChalk,
			ChartID: intervalsChartID,
		}),
		toolboxOpts(),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Intervals of width %d", layout.IntervalWidth),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Interval start"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Probability", Min: 0, Max: frame.YLimit}),
	)
	labels := convertLabels(frame.Intervals)
	bar.SetXAxis(labels).AddSeries("Interval", convertBarData(frame.Intervals),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#91cc75"}))

	trend := charts.NewLine()
	trend.SetXAxis(labels).AddSeries("Trend", convertTrendData(frame.Intervals),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "red", Width: 2, Type: "dashed"}))
	bar.Overlap(trend)
	return bar
}

// newECDFChart creates a line chart of the cumulative distribution.
func newECDFChart(frame Frame) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:   types.ThemeChalk,
			ChartID: ecdfChartID,
		}),
		toolboxOpts(),
		charts.WithTitleOpts(opts.Title{
			Title: "Cumulative Distribution",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Value", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Probability", Min: 0, Max: 1}),
	)
	chart.AddSeries("eCDF", convertPointData(frame.ECDF))
	return chart
}

// renderPage writes the complete page for layout showing frame.
func renderPage(w io.Writer, layout Layout, frame Frame) error {
	script, err := newControlScript(layout, frame.Values)
	if err != nil {
		return err
	}

	page := components.NewPage()
	page.PageTitle = "distlab"
	if layout.Title != "" {
		page.PageTitle = layout.Title
	}
	page.AddCharts(newDistributionChart(layout, frame))
	if layout.IntervalWidth > 0 {
		page.AddCharts(newIntervalsChart(layout, frame))
	}
	// the script runs after the last chart was initialized
	ecdf := newECDFChart(frame)
	ecdf.AddJSFuncs(script)
	page.AddCharts(ecdf)
	return page.Render(w)
}
