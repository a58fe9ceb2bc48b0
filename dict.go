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

package colsketch

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Dict is a lossy, order-preserving dictionary mapping values of type T to
// small integer codes. Build a Dict once from a representative sample with
// Build, then call Encode as many times as needed from any number of
// goroutines: a Dict never mutates after construction.
type Dict[T cmp.Ordered] struct {
	Mode Mode

	// Codes holds the ordered sequence of values promoted to exact codes.
	// Codes[i] is the value denoted by exact code 2*(i+1). Callers must
	// not mutate this slice; Dict owns it.
	Codes []T
}

// Build constructs a Dict of the given Mode from sample. Build sorts a copy
// of sample internally; sample itself is left unmodified.
func Build[T cmp.Ordered](mode Mode, sample []T) Dict[T] {
	dict, _, _ := buildInstrumented(mode, sample)
	return dict
}

// sortCopy returns a sorted copy of sample, leaving sample itself untouched.
// buildInstrumented uses this instead of sorting in place because
// BuildWithOptions must not mutate the caller's sample out from under the
// frequency count it takes before sorting.
func sortCopy[T cmp.Ordered](sample []T) []T {
	sorted := slices.Clone(sample)
	slices.SortFunc(sorted, func(a, b T) bool { return cmp.Less(a, b) })
	return sorted
}

// defaultValue returns the zero value of T, used as the placeholder exact
// value when a Dict is built from an empty sample.
func defaultValue[T cmp.Ordered]() T {
	var zero T
	return zero
}

// Encode maps a query value to its Code. The returned code is always exact
// (even) if query is present in d.Codes, and inexact (odd) otherwise,
// denoting the open interval query falls into. Encode never returns 0 and
// never exceeds d.Mode.MaxInexactCode().
func (d Dict[T]) Encode(query T) Code {
	i, hit := slices.BinarySearchFunc(d.Codes, query, cmp.Compare[T])
	var code Code
	if hit {
		code = Code(2 * (i + 1))
	} else {
		code = Code(2*(i+1) - 1)
	}
	if code < 1 || code > d.Mode.MaxInexactCode() {
		panic("colsketch: encoded code out of range")
	}
	return code
}

// Len returns the number of exact codes in d, i.e. len(d.Codes).
func (d Dict[T]) Len() int {
	return len(d.Codes)
}
