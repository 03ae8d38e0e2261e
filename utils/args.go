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
	"fmt"
	"strconv"
)

// ArgsBuilder assembles command lines for CLI tests.
type ArgsBuilder struct {
	args []string
}

func NewArgs(app string) *ArgsBuilder {
	return &ArgsBuilder{args: []string{app}}
}

// Flag appends --name value. A true bool appends the bare flag, false nothing.
func (b *ArgsBuilder) Flag(name string, value interface{}) *ArgsBuilder {
	if v, ok := value.(bool); ok {
		if v {
			b.args = append(b.args, "--"+name)
		}
		return b
	}
	b.args = append(b.args, "--"+name, formatArg(value))
	return b
}

func (b *ArgsBuilder) Arg(value interface{}) *ArgsBuilder {
	b.args = append(b.args, formatArg(value))
	return b
}

func (b *ArgsBuilder) Build() []string {
	return b.args
}

func formatArg(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	panic(fmt.Sprintf("unsupported argument type %T", value))
}
