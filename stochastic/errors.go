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

package stochastic

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidArgument reports malformed ranges, negative sample counts,
	// unknown shape parameters and inconsistent slider definitions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrGeneratorFailure reports a failing external random source.
	ErrGeneratorFailure = errors.New("generator failure")

	// ErrEmptyDistribution reports a normalisation over zero total.
	ErrEmptyDistribution = errors.New("empty distribution")
)

// InvalidArgumentf returns an ErrInvalidArgument carrying a formatted reason.
func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// GeneratorFailure marks err as an ErrGeneratorFailure while keeping err in the chain.
func GeneratorFailure(err error, format string, args ...interface{}) error {
	return errors.Wrapf(errors.Mark(err, ErrGeneratorFailure), format, args...)
}
