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
	"os"
	"os/signal"
	"syscall"

	"github.com/0xsoniclabs/distlab/config"
	"github.com/0xsoniclabs/distlab/logger"
	"github.com/0xsoniclabs/distlab/stochastic/metrics"
	"github.com/0xsoniclabs/distlab/stochastic/visualizer"
	"github.com/0xsoniclabs/distlab/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

// ViewCommand serves the interactive distribution view.
var ViewCommand = cli.Command{
	Action:    viewAction,
	Name:      "view",
	Usage:     "explore a distribution interactively in the browser",
	ArgsUsage: "",
	Flags: []cli.Flag{
		&utils.LabFlag,
		&utils.SourceFlag,
		&utils.LowFlag,
		&utils.HighFlag,
		&utils.SamplesFlag,
		&utils.ScaleFlag,
		&utils.LambdaFlag,
		&utils.IntervalsFlag,
		&utils.RandomSeedFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The view command draws the distribution of a generator and redraws it whenever
a slider is moved. It blocks until interrupted.`,
}

func viewAction(ctx *cli.Context) error {
	preset, err := LookupPreset(ctx.String(utils.LabFlag.Name))
	if err != nil {
		return err
	}
	cfg, err := config.NewConfig(ctx, preset.Config)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "View")

	sliders, err := preset.SlidersFor(cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg, m)
	if err != nil {
		return err
	}

	sink := visualizer.NewWebSink(cfg.Addr(), log, visualizer.WithGatherer(registry))
	view, err := visualizer.NewView(gen, sink, sliders, log,
		visualizer.WithTitle(preset.Title),
		visualizer.WithRedrawRecorder(m),
	)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Noticef("exploring %v on %v", gen.Shape(), gen.Range())
	return view.Start(runCtx)
}
