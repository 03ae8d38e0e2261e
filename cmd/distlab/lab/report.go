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
	"strconv"

	"github.com/0xsoniclabs/distlab/config"
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/0xsoniclabs/distlab/stochastic/generator"
	"github.com/0xsoniclabs/distlab/stochastic/statistics/distribution"
	"github.com/0xsoniclabs/distlab/stochastic/statistics/exponential"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const probabilityDigits = 4

const (
	createReportTable = `CREATE TABLE IF NOT EXISTS distribution (
	lab TEXT,
	source TEXT,
	samples INTEGER,
	value INTEGER,
	probability REAL,
	interval REAL,
	ecdf REAL
)`
	insertReportRow = "INSERT INTO distribution (lab, source, samples, value, probability, interval, ecdf) VALUES (?, ?, ?, ?, ?, ?, ?)"
)

// reportRow is the probability of one value together with its interval
// probability and the cumulative probability up to and including it.
type reportRow struct {
	Value       int64
	Probability float64
	Interval    *float64
	ECDF        float64
}

// report is a one-shot evaluation of a generator.
type report struct {
	Lab     string
	Source  string
	Samples int
	Rows    []reportRow
	Summary distribution.Summary
	// Lambda is the decay rate fitted to the samples of an exponential
	// source, nil for other sources or if no decay fits.
	Lambda *float64
}

// newReport draws cfg.Samples samples and evaluates their distribution.
func newReport(cfg *config.Config, gen *generator.Generator) (*report, error) {
	res, err := gen.GetDistribution(cfg.Samples, true, nil)
	if err != nil {
		return nil, err
	}
	cumulative, err := distribution.ToECDF(res.Distribution, 0)
	if err != nil {
		return nil, err
	}

	r := &report{
		Lab:     cfg.Lab,
		Source:  generator.Describe(cfg.Source, gen.Shape()),
		Samples: cfg.Samples,
		Rows:    make([]reportRow, len(res.Distribution.Keys)),
		Summary: res.Summary,
	}
	for i, k := range res.Distribution.Keys {
		r.Rows[i] = reportRow{
			Value:       k,
			Probability: res.Distribution.Values[i],
			ECDF:        cumulative[i][1],
		}
		if res.Intervals != nil {
			if p, ok := res.Intervals.Get(k); ok {
				r.Rows[i].Interval = &p
			}
		}
	}
	if gen.Shape().Kind() == stochastic.ExponentialKind {
		r.Lambda = fitLambda(cfg.ValueRange(), res.Summary)
	}
	return r, nil
}

// fitLambda estimates the decay rate from the sample mean scaled onto [0, 1).
// Each integer value stands for the unit interval starting at it.
func fitLambda(rng stochastic.ValueRange, s distribution.Summary) *float64 {
	mean := (s.Mean - float64(rng.Low) + 0.5) / float64(rng.Len())
	lambda, err := exponential.ApproximateLambda(mean)
	if err != nil {
		return nil
	}
	return &lambda
}

// Table renders the report as a text table.
func (r *report) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Footer = text.FormatDefault
	title := fmt.Sprintf("%s, %d samples", r.Source, r.Samples)
	if r.Lab != "" {
		title = r.Lab + ": " + title
	}
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Value", "Probability", "Interval", "eCDF"})
	for _, row := range r.Rows {
		interval := "-"
		if row.Interval != nil {
			interval = formatProbability(*row.Interval)
		}
		tw.AppendRow(table.Row{row.Value, formatProbability(row.Probability), interval, formatProbability(row.ECDF)})
	}
	tw.AppendFooter(table.Row{
		"mean " + strconv.FormatFloat(r.Summary.Mean, 'f', 3, 64),
		"std " + strconv.FormatFloat(r.Summary.StdDev, 'f', 3, 64),
		fmt.Sprintf("min %v", r.Summary.Min),
		fmt.Sprintf("max %v", r.Summary.Max),
	})
	if r.Lambda != nil {
		tw.SetCaption("fitted lambda %.3f", *r.Lambda)
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}

// DbRows returns the report as rows of the distribution table.
func (r *report) DbRows() [][]any {
	rows := make([][]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		var interval any
		if row.Interval != nil {
			interval = *row.Interval
		}
		rows = append(rows, []any{r.Lab, r.Source, r.Samples, row.Value, row.Probability, interval, row.ECDF})
	}
	return rows
}

func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', probabilityDigits, 64)
}
