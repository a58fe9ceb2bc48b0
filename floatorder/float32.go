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

const float32SignBit = uint32(1) << 31

// Float32 is a totally-ordered key for float32, usable as
// colsketch.Dict[Float32]'s type parameter.
type Float32 uint32

// NewFloat32 maps f onto its totally-ordered key.
func NewFloat32(f float32) Float32 {
	bits := math.Float32bits(f)
	if bits&float32SignBit != 0 {
		bits = ^bits
	} else {
		bits |= float32SignBit
	}
	return Float32(bits)
}

// DefaultFloat32 returns the key for float32(1.0), matching the original
// implementation's DictF32 default.
func DefaultFloat32() Float32 {
	return NewFloat32(1.0)
}

// Value recovers the float32 k was built from.
func (k Float32) Value() float32 {
	bits := uint32(k)
	if bits&float32SignBit != 0 {
		bits &^= float32SignBit
	} else {
		bits = ^bits
	}
	return math.Float32frombits(bits)
}

// Next returns the key immediately above k, and false if k is already the
// maximum representable key.
func (k Float32) Next() (Float32, bool) {
	v, ok := step(uint32(k), 1)
	return Float32(v), ok
}

// Prev returns the key immediately below k, and false if k is already the
// minimum representable key.
func (k Float32) Prev() (Float32, bool) {
	v, ok := step(uint32(k), -1)
	return Float32(v), ok
}
