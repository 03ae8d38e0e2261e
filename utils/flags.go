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

package utils

import (
	"github.com/urfave/cli/v2"
)

var (
	LabFlag = cli.StringFlag{
		Name:  "lab",
		Usage: "exercise preset providing defaults and sliders (\"lab1\", \"lab2\", \"lab3\")",
	}
	SourceFlag = cli.StringFlag{
		Name:  "source",
		Usage: "random source (\"crand\", \"uniform\", \"normal\", \"exponential\")",
	}
	LowFlag = cli.Int64Flag{
		Name:  "low",
		Usage: "smallest value of the distribution domain",
	}
	HighFlag = cli.Int64Flag{
		Name:  "high",
		Usage: "upper bound (exclusive) of the distribution domain",
	}
	SamplesFlag = cli.IntFlag{
		Name:    "samples",
		Aliases: []string{"n"},
		Usage:   "number of samples",
	}
	ScaleFlag = cli.Float64Flag{
		Name:  "scale",
		Usage: "standard deviation of the normal source",
	}
	LambdaFlag = cli.Float64Flag{
		Name:  "lambda",
		Usage: "decay rate of the exponential source",
	}
	IntervalsFlag = cli.IntFlag{
		Name:  "intervals",
		Usage: "width of the sliding interval window, 0 disables interval distributions",
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the random source",
	}
	PortFlag = cli.IntFlag{
		Name:  "port",
		Usage: "port of the interactive view",
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the report to a file, gzip compressed if it ends in .gz",
	}
	DbFlag = cli.PathFlag{
		Name:  "db",
		Usage: "insert the distribution into a sqlite3 database",
	}
)
