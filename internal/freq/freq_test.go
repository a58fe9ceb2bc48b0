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

package freq

import "testing"

func TestCount(t *testing.T) {
	counts := Count([]int{1, 2, 2, 3, 3, 3})
	if counts[1] != 1 || counts[2] != 2 || counts[3] != 3 {
		t.Fatalf("Count = %v, want {1:1 2:2 3:3}", counts)
	}
}

func TestCountEmpty(t *testing.T) {
	counts := Count([]int(nil))
	if len(counts) != 0 {
		t.Fatalf("Count(nil) = %v, want empty", counts)
	}
}

func TestTop(t *testing.T) {
	value, count, ok := Top(Count([]string{"a", "b", "b", "c", "c", "c"}))
	if !ok || value != "c" || count != 3 {
		t.Fatalf("Top = %q,%d,%v, want c,3,true", value, count, ok)
	}
}

func TestTopEmpty(t *testing.T) {
	_, _, ok := Top(map[int]int{})
	if ok {
		t.Fatal("Top(empty) reported ok")
	}
}
