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

import "fmt"

// ValueRange is the half-open interval [Low, High) of values a generator may produce.
type ValueRange struct {
	Low  int64
	High int64
}

// NewValueRange creates a range and checks that it is not empty.
func NewValueRange(low, high int64) (ValueRange, error) {
	r := ValueRange{Low: low, High: high}
	if err := r.Validate(); err != nil {
		return ValueRange{}, err
	}
	return r, nil
}

// Validate returns ErrInvalidArgument if low >= high or if the range spans
// more than MaxRangeLen values.
func (r ValueRange) Validate() error {
	if r.Low >= r.High {
		return InvalidArgumentf("empty value range %v", r)
	}
	// the width wraps around for ranges wider than int64
	if width := r.High - r.Low; width <= 0 || width > MaxRangeLen {
		return InvalidArgumentf("value range %v spans more than %d values", r, MaxRangeLen)
	}
	return nil
}

// Len returns the number of values in the range, or 0 if the range is invalid.
func (r ValueRange) Len() int {
	if r.Validate() != nil {
		return 0
	}
	return int(r.High - r.Low)
}

// Contains checks whether x lies in [Low, High).
func (r ValueRange) Contains(x int64) bool {
	return x >= r.Low && x < r.High
}

// Values returns all values of the range in ascending order.
func (r ValueRange) Values() []int64 {
	if r.Low >= r.High {
		return nil
	}
	values := make([]int64, 0, r.Len())
	for x := r.Low; x < r.High; x++ {
		values = append(values, x)
	}
	return values
}

func (r ValueRange) String() string {
	return fmt.Sprintf("[%d, %d)", r.Low, r.High)
}
