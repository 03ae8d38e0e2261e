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

// Package exponential implements the exponential distribution truncated to [0, 1).
// Discrete samples over a range of n values are obtained by scaling with n.
package exponential

import (
	"math"

	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/cockroachdb/errors"
)

const (
	newtonError      = 1e-9  // epsilon for Newton's convergence criteria
	newtonMaxStep    = 10000 // maximum number of iterations in Newton's method
	newtonInitLambda = 1.0   // initial parameter of the search
)

// CDF is the cumulative distribution function for the truncated exponential distribution.
func CDF(lambda float64, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return math.Expm1(-lambda*x) / math.Expm1(-lambda)
}

// ToECDF is a piecewise linear representation of the cumulative distribution
// function with n equidistant segments.
func ToECDF(lambda float64, n int) [][2]float64 {
	fn := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		x := float64(i) / float64(n)
		fn = append(fn, [2]float64{x, CDF(lambda, x)})
	}
	return fn
}

// Quantile is the inverse cumulative distribution function.
func Quantile(lambda float64, p float64) float64 {
	return math.Log1p(p*math.Expm1(-lambda)) / -lambda
}

// Sample maps the uniform variate u in [0, 1) onto one of the values 0..n-1.
func Sample(lambda float64, u float64, n int64) int64 {
	y := int64(float64(n) * Quantile(lambda, u))
	if y < 0 {
		return 0
	} else if y >= n {
		return n - 1
	}
	return y
}

// Mean is the expected value of the distribution.
func Mean(lambda float64) float64 {
	return 1/lambda - 1/math.Expm1(lambda)
}

// mle is the maximum likelihood condition for lambda given the sample mean.
func mle(lambda float64, mean float64) float64 {
	return Mean(lambda) - mean
}

// dMLE is the derivative of mle with respect to lambda.
func dMLE(lambda float64) float64 {
	e := -math.Expm1(-lambda)
	return math.Exp(-lambda)/(e*e) - 1/(lambda*lambda)
}

// ApproximateLambda finds the lambda whose mean matches the sample mean with
// Newton's method. The mean must lie in (0, 0.5) since the distribution has
// no decay otherwise.
func ApproximateLambda(mean float64) (float64, error) {
	if math.IsNaN(mean) || mean <= 0 || mean >= 0.5 {
		return 0, stochastic.InvalidArgumentf("no exponential decay fits the mean %v", mean)
	}
	l := newtonInitLambda
	for range newtonMaxStep {
		value := mle(l, mean)
		if math.Abs(value) < newtonError {
			return l, nil
		}
		next := l - value/dMLE(l)
		if next <= 0 {
			next = l / 2
		}
		l = next
	}
	return 0, errors.Newf("lambda approximation failed to converge after %v steps", newtonMaxStep)
}
