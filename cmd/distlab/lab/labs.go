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
	"fmt"
	"strings"

	"github.com/0xsoniclabs/distlab/stochastic/generator"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// LabsCommand lists the built-in presets.
var LabsCommand = cli.Command{
	Action: labsAction,
	Name:   "labs",
	Usage:  "list the built-in exercises",
}

func labsAction(ctx *cli.Context) error {
	_, err := fmt.Fprintln(ctx.App.Writer, presetTable())
	return err
}

func presetTable() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Lab", "Source", "Range", "Intervals", "Sliders", "Description"})
	for _, name := range PresetNames() {
		p := Presets[name]
		cfg := p.Config
		shape, err := cfg.Shape()
		source := cfg.Source
		if err == nil {
			source = generator.Describe(cfg.Source, shape)
		}
		sliders := make([]string, 0, len(p.Sliders))
		for _, s := range p.Sliders {
			sliders = append(sliders, fmt.Sprintf("%s %g..%g", s.Label, s.Min, s.Max))
		}
		tw.AppendRow(table.Row{name, source, cfg.ValueRange(), cfg.Intervals, strings.Join(sliders, ", "), p.Description})
	}
	return tw.Render()
}
