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

// DefaultSeed is the seed of generators whose random state is not given explicitly.
const DefaultSeed = 42

// DefaultSamples is the number of samples drawn before any slider is moved.
const DefaultSamples = 500

// DefaultIntervalWidth is the window width of interval distributions.
const DefaultIntervalWidth = 5

// DefaultScale is the spread of normal-shaped generators.
const DefaultScale = 3.0

// DefaultLambda is the decay rate of exponential-shaped generators.
const DefaultLambda = 5.0

// NumECDFPoints sets the number of points in the empirical cumulative distribution function.
const NumECDFPoints = 300

// MaxRangeLen is the largest number of values a distribution domain may span.
// Distributions are dense over their domain.
const MaxRangeLen = 1 << 24

// CRandMax is the exclusive upper bound of the C-style linear congruential source.
const CRandMax = 32768
