// Copyright (C) 2024 Colsketch Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package floatorder

import "math"

const float64SignBit = uint64(1) << 63

// Float64 is a totally-ordered key for float64, usable as
// colsketch.Dict[Float64]'s type parameter.
type Float64 uint64

// NewFloat64 maps f onto its totally-ordered key.
func NewFloat64(f float64) Float64 {
	bits := math.Float64bits(f)
	if bits&float64SignBit != 0 {
		bits = ^bits
	} else {
		bits |= float64SignBit
	}
	return Float64(bits)
}

// DefaultFloat64 returns the key for 1.0, matching the original
// implementation's DictF64 default.
func DefaultFloat64() Float64 {
	return NewFloat64(1.0)
}

// Value recovers the float64 k was built from. The mapping NewFloat64
// performs is a bijection over all 2^64 bit patterns, so this is lossless,
// including for every NaN bit pattern.
func (k Float64) Value() float64 {
	bits := uint64(k)
	if bits&float64SignBit != 0 {
		bits &^= float64SignBit
	} else {
		bits = ^bits
	}
	return math.Float64frombits(bits)
}

// Next returns the key immediately above k, and false if k is already the
// maximum representable key (the positive-signed NaN with the largest
// mantissa).
func (k Float64) Next() (Float64, bool) {
	v, ok := step(uint64(k), 1)
	return Float64(v), ok
}

// Prev returns the key immediately below k, and false if k is already the
// minimum representable key (the negative-signed NaN with the largest
// mantissa).
func (k Float64) Prev() (Float64, bool) {
	v, ok := step(uint64(k), -1)
	return Float64(v), ok
}
