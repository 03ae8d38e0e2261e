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
	"sort"
	"sync"

	"github.com/0xsoniclabs/distlab/logger"
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/0xsoniclabs/distlab/stochastic/generator"
	"github.com/0xsoniclabs/distlab/stochastic/statistics/distribution"
	"github.com/cockroachdb/errors"
)

// State is the lifecycle state of a view.
type State int

const (
	Uninitialized State = iota // no frame has been drawn yet
	Active                     // series exist and are updated in place
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Active:
		return "active"
	}
	return "unknown"
}

// RedrawRecorder observes the outcome of every redraw.
type RedrawRecorder interface {
	Redrawn(err error)
}

// ViewOption configures a view.
type ViewOption func(*View)

// WithRedrawRecorder reports every redraw to r.
func WithRedrawRecorder(r RedrawRecorder) ViewOption {
	return func(v *View) {
		v.recorder = r
	}
}

// WithTitle sets the title shown above the distribution chart.
func WithTitle(title string) ViewOption {
	return func(v *View) {
		v.title = title
	}
}

// View binds a generator to a display sink. The first draw builds the series,
// every later draw only replaces their data.
type View struct {
	gen      *generator.Generator
	sink     Sink
	sliders  []SliderSpec
	title    string
	log      logger.Logger
	recorder RedrawRecorder

	mu     sync.Mutex
	state  State
	values map[string]float64
	frame  Frame
}

// NewView creates a view over gen. Every slider must steer either the sample
// count or a parameter of the generator's shape.
func NewView(gen *generator.Generator, sink Sink, sliders []SliderSpec, log logger.Logger, opts ...ViewOption) (*View, error) {
	if gen == nil {
		return nil, stochastic.InvalidArgumentf("view requires a generator")
	}
	if sink == nil {
		return nil, stochastic.InvalidArgumentf("view requires a display sink")
	}
	if err := validateSliders(sliders, gen.Shape()); err != nil {
		return nil, err
	}

	v := &View{
		gen:     gen,
		sink:    sink,
		sliders: append([]SliderSpec(nil), sliders...),
		log:     log,
		values:  make(map[string]float64, len(sliders)),
	}
	for _, s := range sliders {
		v.values[s.Name()] = s.Initial
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// State returns the lifecycle state of the view.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Values returns a copy of the slider values of the displayed frame.
func (v *View) Values() map[string]float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return copyValues(v.values)
}

// Frame returns the displayed frame.
func (v *View) Frame() Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.frame
}

// Draw computes a frame for values and shows it. Missing values keep their
// current setting. On failure the displayed frame is left untouched.
func (v *View) Draw(values map[string]float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	err := v.draw(values)
	if v.recorder != nil {
		v.recorder.Redrawn(err)
	}
	return err
}

func (v *View) draw(values map[string]float64) error {
	merged := copyValues(v.values)
	for name, value := range values {
		merged[name] = value
	}

	frame, err := v.compute(merged)
	if err != nil {
		return err
	}

	switch v.state {
	case Uninitialized:
		layout := Layout{
			Title:         v.title,
			Range:         v.gen.Range(),
			IntervalWidth: v.gen.Intervals(),
			Sliders:       v.sliders,
			Values:        copyValues(merged),
		}
		if err = v.sink.Build(layout, frame); err != nil {
			return errors.Wrap(err, "cannot build view")
		}
		v.state = Active
	case Active:
		if err = v.sink.Update(frame); err != nil {
			return errors.Wrap(err, "cannot update view")
		}
	}

	v.values = merged
	v.frame = frame
	v.log.Debugf("redrawn %d samples with %v", frame.Samples, describeValues(merged))
	return nil
}

func (v *View) compute(values map[string]float64) (Frame, error) {
	n := stochastic.DefaultSamples
	params := make(map[string]float64, len(values))
	for name, value := range values {
		if name == SampleCountName {
			n = int(math.Round(value))
			continue
		}
		params[name] = value
	}

	shape, err := stochastic.ApplyParams(v.gen.Shape(), params)
	if err != nil {
		return Frame{}, err
	}
	res, err := v.gen.GetDistribution(n, true, shape)
	if err != nil {
		return Frame{}, err
	}

	frame := Frame{
		Series:  res.Distribution.Points(),
		Samples: n,
		Values:  copyValues(values),
		Summary: res.Summary,
	}
	if res.Intervals != nil {
		frame.Intervals = res.Intervals.Points()
	}
	if frame.ECDF, err = distribution.ToECDF(res.Distribution, stochastic.NumECDFPoints); err != nil {
		return Frame{}, err
	}
	frame.YLimit = YLimit(frame.Series, frame.Intervals)
	return frame, nil
}

// OnChange handles a slider event. Values are clamped to their slider bounds,
// unknown slider names are rejected. Failures are logged and the previous frame
// stays on display.
func (v *View) OnChange(values map[string]float64) error {
	clamped := make(map[string]float64, len(values))
	for name, value := range values {
		s, ok := v.slider(name)
		if !ok {
			err := stochastic.InvalidArgumentf("unknown slider %q", name)
			v.log.Errorf("slider change rejected: %v", err)
			return err
		}
		clamped[name] = s.Clamp(value)
	}
	if err := v.Draw(clamped); err != nil {
		v.log.Errorf("cannot redraw: %v", err)
		return err
	}
	return nil
}

// Run enters the display loop of the sink. The view must have been drawn before.
func (v *View) Run(ctx context.Context) error {
	if state := v.State(); state != Active {
		return stochastic.InvalidArgumentf("cannot run a view in state %v", state)
	}
	return v.sink.Run(ctx, v.OnChange)
}

// Start draws the initial frame and enters the display loop.
func (v *View) Start(ctx context.Context) error {
	if err := v.Draw(nil); err != nil {
		return err
	}
	return v.Run(ctx)
}

func (v *View) slider(name string) (SliderSpec, bool) {
	for _, s := range v.sliders {
		if s.Name() == name {
			return s, true
		}
	}
	return SliderSpec{}, false
}

func copyValues(values map[string]float64) map[string]float64 {
	res := make(map[string]float64, len(values))
	for k, v := range values {
		res[k] = v
	}
	return res
}

type namedValue struct {
	name  string
	value float64
}

func describeValues(values map[string]float64) []namedValue {
	res := make([]namedValue, 0, len(values))
	for k, v := range values {
		res = append(res, namedValue{k, v})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].name < res[j].name })
	return res
}
