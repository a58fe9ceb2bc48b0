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

import "cmp"

// cluster holds frequency information about one distinct value in a sorted
// sample: the value itself, and how many times it occurred.
type cluster[T cmp.Ordered] struct {
	value T
	count int
}

// clusters performs frequency analysis on a sorted sample, collapsing each
// maximal run of equal values into a single cluster. The result is strictly
// increasing by value, and cluster counts sum to len(sortedSample).
func clusters[T cmp.Ordered](sortedSample []T) []cluster[T] {
	if len(sortedSample) == 0 {
		return nil
	}

	clu := make([]cluster[T], 0, len(sortedSample))
	curr, count := sortedSample[0], 0
	for _, s := range sortedSample {
		if cmp.Compare(s, curr) == 0 {
			count++
			continue
		}
		clu = append(clu, cluster[T]{curr, count})
		curr, count = s, 1
	}
	return append(clu, cluster[T]{curr, count})
}
