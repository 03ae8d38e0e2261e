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

//go:generate mockgen -source source.go -destination source_mock.go -package stochastic

// Source is the external random source. Generate returns exactly n integers
// drawn under the given shape; bound inclusivity is the source's own contract.
type Source interface {
	Generate(rng ValueRange, n int, shape Shape) ([]int64, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(rng ValueRange, n int, shape Shape) ([]int64, error)

// Generate calls f.
func (f SourceFunc) Generate(rng ValueRange, n int, shape Shape) ([]int64, error) {
	return f(rng, n, shape)
}
