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

// Package floatorder wraps IEEE-754 floats in a totally-ordered key
// suitable as colsketch.Dict's type parameter. colsketch.Dict itself only
// ever requires cmp.Ordered and knows nothing about floats or NaN; this
// package supplies the adapter the core spec calls for instead of baking
// float awareness into the core.
//
// Both Float64 and Float32 map their value's bit pattern onto an unsigned
// integer of the same width using the standard monotonic transform: flip
// the sign bit for non-negative values, flip every bit for negative values.
// The resulting key sorts in the value's intended total order: a
// negative-signed NaN first, then -Inf, increasingly-negative-magnitude
// negatives, -0, +0, positives, +Inf, and finally a positive-signed NaN.
// This reproduces the order the original implementation's float_ord crate
// defines by a hand-rolled Ord impl, here reached via a bit-pattern mapping
// instead.
package floatorder

import "golang.org/x/exp/constraints"

// step adjusts an unsigned monotonic key by delta (+1 or -1), reporting
// false if that would step outside the representable range. Both Float64
// and Float32 share this single stepping rule over their respective key
// widths instead of hand-rolling per-FpCategory case analysis: because the
// bit mapping already guarantees adjacency in key space implies adjacency
// in the intended float order, a plain increment/decrement suffices.
func step[U constraints.Unsigned](k U, delta int) (U, bool) {
	if delta > 0 {
		if k == ^U(0) {
			return k, false
		}
		return k + 1, true
	}
	if k == 0 {
		return k, false
	}
	return k - 1, true
}
