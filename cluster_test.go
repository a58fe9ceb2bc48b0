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

import "testing"

func TestClustersEmpty(t *testing.T) {
	if got := clusters[int](nil); got != nil {
		t.Fatalf("clusters(nil) = %v, want nil", got)
	}
}

func TestClustersAllEqual(t *testing.T) {
	got := clusters([]int{5, 5, 5, 5})
	want := []cluster[int]{{5, 4}}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("clusters(all equal) = %v, want %v", got, want)
	}
}

func TestClustersAllDistinct(t *testing.T) {
	got := clusters([]int{1, 2, 3, 4})
	if len(got) != 4 {
		t.Fatalf("len(clusters) = %d, want 4", len(got))
	}
	for i, c := range got {
		if c.count != 1 {
			t.Fatalf("clusters[%d].count = %d, want 1", i, c.count)
		}
	}
}

func TestClustersStrictlyIncreasingAndCountsSum(t *testing.T) {
	sample := []int{1, 1, 2, 3, 3, 3, 5, 5}
	clu := clusters(sample)

	sum := 0
	for i, c := range clu {
		sum += c.count
		if c.count <= 0 {
			t.Fatalf("clusters[%d].count = %d, want positive", i, c.count)
		}
		if i > 0 && clu[i-1].value >= c.value {
			t.Fatalf("clusters not strictly increasing at %d: %v >= %v", i, clu[i-1].value, c.value)
		}
	}
	if sum != len(sample) {
		t.Fatalf("cluster counts sum to %d, want %d", sum, len(sample))
	}
}
