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

// Package freq tallies occurrences of distinct values in a sample. It backs
// the build telemetry's "top value" log field.
package freq

// Count returns a map from each distinct value in sample to the number of
// times it occurs.
func Count[T comparable](sample []T) map[T]int {
	counts := make(map[T]int, len(sample))
	for _, v := range sample {
		counts[v]++
	}
	return counts
}

// Top returns the most frequent value in counts and its count, and false if
// counts is empty. Ties are broken arbitrarily by map iteration order,
// matching Go's lack of a stable map order.
func Top[T comparable](counts map[T]int) (value T, count int, ok bool) {
	for v, n := range counts {
		if !ok || n > count {
			value, count, ok = v, n, true
		}
	}
	return value, count, ok
}
