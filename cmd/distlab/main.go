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

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/distlab/cmd/distlab/lab"
	"github.com/urfave/cli/v2"
)

var distlabApp = &cli.App{
	Name:      "Random number distribution explorer",
	HelpName:  "distlab",
	Usage:     "observe how the output distribution of a random source changes with sample size and shape",
	Copyright: "(c) 2025 Sonic Labs",
	Commands: []*cli.Command{
		&lab.ViewCommand,
		&lab.PrintCommand,
		&lab.LabsCommand,
	},
}

func main() {
	if err := distlabApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
