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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgsBuilder_Build(t *testing.T) {
	args := NewArgs("distlab").
		Arg("print").
		Flag("lab", "lab2").
		Flag("samples", 1000).
		Flag("low", int64(-5)).
		Flag("scale", 2.5).
		Flag("verbose", true).
		Flag("quiet", false).
		Arg(false).
		Build()

	assert.Equal(t, []string{
		"distlab", "print",
		"--lab", "lab2",
		"--samples", "1000",
		"--low", "-5",
		"--scale", "2.5",
		"--verbose",
		"false",
	}, args)
}

func TestArgsBuilder_UnsupportedType(t *testing.T) {
	assert.Panics(t, func() {
		NewArgs("distlab").Flag("bad", []int{1})
	})
}
