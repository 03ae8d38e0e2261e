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

package config

import (
	"fmt"
	"strings"

	"github.com/0xsoniclabs/distlab/logger"
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/0xsoniclabs/distlab/stochastic/generator"
	"github.com/0xsoniclabs/distlab/utils"
	"github.com/urfave/cli/v2"
)

const DefaultPort = 8080

// Config summarizes the settings of a distlab run.
type Config struct {
	AppName     string
	CommandName string

	Lab       string  // preset the settings are based on
	Source    string  // random source name
	Low       int64   // smallest value of the domain
	High      int64   // exclusive upper bound of the domain
	Samples   int     // initial number of samples
	Scale     float64 // spread of normal sources
	Lambda    float64 // decay rate of exponential sources
	Intervals int     // sliding window width, zero disables interval distributions
	Seed      int64   // seed of the random source
	Port      int     // port of the interactive view
	Output    string  // report file
	DbPath    string  // sqlite3 report database
	LogLevel  string
}

// DefaultConfig returns the settings used without any preset or flag.
func DefaultConfig() Config {
	return Config{
		Source:   generator.CRandName,
		Low:      0,
		High:     10,
		Samples:  stochastic.DefaultSamples,
		Scale:    stochastic.DefaultScale,
		Lambda:   stochastic.DefaultLambda,
		Seed:     stochastic.DefaultSeed,
		Port:     DefaultPort,
		LogLevel: logger.DefaultLogLevel,
	}
}

// NewConfig overrides base with every flag given by the user and validates the result.
func NewConfig(ctx *cli.Context, base Config) (*Config, error) {
	cfg := base
	if ctx.App != nil {
		cfg.AppName = ctx.App.HelpName
	}
	if ctx.Command != nil {
		cfg.CommandName = ctx.Command.Name
	}

	if v, ok := getFlagValue(ctx, utils.LabFlag); ok {
		cfg.Lab = v.(string)
	}
	if v, ok := getFlagValue(ctx, utils.SourceFlag); ok {
		cfg.Source = strings.ToLower(v.(string))
	}
	if v, ok := getFlagValue(ctx, utils.LowFlag); ok {
		cfg.Low = v.(int64)
	}
	if v, ok := getFlagValue(ctx, utils.HighFlag); ok {
		cfg.High = v.(int64)
	}
	if v, ok := getFlagValue(ctx, utils.SamplesFlag); ok {
		cfg.Samples = v.(int)
	}
	if v, ok := getFlagValue(ctx, utils.ScaleFlag); ok {
		cfg.Scale = v.(float64)
	}
	if v, ok := getFlagValue(ctx, utils.LambdaFlag); ok {
		cfg.Lambda = v.(float64)
	}
	if v, ok := getFlagValue(ctx, utils.IntervalsFlag); ok {
		cfg.Intervals = v.(int)
	}
	if v, ok := getFlagValue(ctx, utils.RandomSeedFlag); ok {
		cfg.Seed = v.(int64)
	}
	if v, ok := getFlagValue(ctx, utils.PortFlag); ok {
		cfg.Port = v.(int)
	}
	if v, ok := getFlagValue(ctx, utils.OutputFlag); ok {
		cfg.Output = v.(string)
	}
	if v, ok := getFlagValue(ctx, utils.DbFlag); ok {
		cfg.DbPath = v.(string)
	}
	if v, ok := getFlagValue(ctx, logger.LogLevelFlag); ok {
		cfg.LogLevel = v.(string)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// getFlagValue returns the value of flag if the user specified it.
func getFlagValue(ctx *cli.Context, flag interface{}) (interface{}, bool) {
	switch f := flag.(type) {
	case cli.IntFlag:
		if ctx.IsSet(f.Name) {
			return ctx.Int(f.Name), true
		}
	case cli.Int64Flag:
		if ctx.IsSet(f.Name) {
			return ctx.Int64(f.Name), true
		}
	case cli.Float64Flag:
		if ctx.IsSet(f.Name) {
			return ctx.Float64(f.Name), true
		}
	case cli.StringFlag:
		if ctx.IsSet(f.Name) {
			return ctx.String(f.Name), true
		}
	case cli.PathFlag:
		if ctx.IsSet(f.Name) {
			return ctx.Path(f.Name), true
		}
	}
	return nil, false
}

// Validate checks the settings for consistency.
func (cfg *Config) Validate() error {
	if _, err := generator.SourceKind(cfg.Source); err != nil {
		return err
	}
	rng, err := stochastic.NewValueRange(cfg.Low, cfg.High)
	if err != nil {
		return err
	}
	if cfg.Source == generator.CRandName && rng.Len() > stochastic.CRandMax {
		return stochastic.InvalidArgumentf("crand supports ranges of at most %d values, got %v", stochastic.CRandMax, rng)
	}
	if cfg.Samples < 0 {
		return stochastic.InvalidArgumentf("negative sample count %d", cfg.Samples)
	}
	if cfg.Intervals < 0 {
		return stochastic.InvalidArgumentf("negative interval width %d", cfg.Intervals)
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return stochastic.InvalidArgumentf("invalid port %d", cfg.Port)
	}
	_, err = cfg.Shape()
	return err
}

// ValueRange returns the distribution domain.
func (cfg *Config) ValueRange() stochastic.ValueRange {
	return stochastic.ValueRange{Low: cfg.Low, High: cfg.High}
}

// Shape returns the initial shape of the configured source.
func (cfg *Config) Shape() (stochastic.Shape, error) {
	kind, err := generator.SourceKind(cfg.Source)
	if err != nil {
		return nil, err
	}
	switch kind {
	case stochastic.NormalKind:
		shape := stochastic.Normal{Scale: cfg.Scale}
		return shape, shape.Validate()
	case stochastic.ExponentialKind:
		shape := stochastic.Exponential{Lambda: cfg.Lambda}
		return shape, shape.Validate()
	default:
		return stochastic.Uniform{}, nil
	}
}

// Addr returns the listen address of the interactive view.
func (cfg *Config) Addr() string {
	return fmt.Sprintf(":%d", cfg.Port)
}
