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
	"github.com/0xsoniclabs/distlab/config"
	"github.com/0xsoniclabs/distlab/logger"
	"github.com/0xsoniclabs/distlab/utils"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

// PrintCommand computes a distribution once and reports it.
var PrintCommand = cli.Command{
	Action:    printAction,
	Name:      "print",
	Usage:     "print the distribution of a generator",
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
		&utils.OutputFlag,
		&utils.DbFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The print command draws the requested number of samples and prints the
probability, interval probability and cumulative probability of every value.`,
}

func printAction(ctx *cli.Context) (err error) {
	preset, err := LookupPreset(ctx.String(utils.LabFlag.Name))
	if err != nil {
		return err
	}
	cfg, err := config.NewConfig(ctx, preset.Config)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Print")

	gen, err := newGenerator(cfg, nil)
	if err != nil {
		return err
	}
	r, err := newReport(cfg, gen)
	if err != nil {
		return errors.Wrap(err, "cannot compute distribution")
	}

	printers := utils.NewPrinters().
		AddPrinterToWriter(ctx.App.Writer, r.Table).
		AddPrinterToFile(cfg.Output, r.Table)
	if _, err = printers.AddPrinterToSqlite3(cfg.DbPath, createReportTable, insertReportRow, r.DbRows); err != nil {
		_ = printers.Close()
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, printers.Close())
	}()

	if err = printers.Print(); err != nil {
		return err
	}
	if cfg.Output != "" {
		log.Noticef("report written to %v", cfg.Output)
	}
	if cfg.DbPath != "" {
		log.Noticef("%d rows inserted into %v", len(r.Rows), cfg.DbPath)
	}
	return nil
}
