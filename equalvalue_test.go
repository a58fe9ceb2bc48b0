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
	"math/rand"
	"slices"
	"testing"

	"github.com/sketchkit/colsketch/internal/freq"
)

// A value occurring at least sample_size/N times should normally be
// promoted to an exact code. This is tested statistically, over many
// random samples salted with one deliberately dominant value, not as a hard
// invariant: occasional misses near the calibration boundary are allowed.
func TestEqualValueCodingStatistical(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const trials = 50
	const n = 127
	hits := 0

	for trial := 0; trial < trials; trial++ {
		sampleSize := 20000
		dominant := int32(trial * 1000)
		sample := make([]int32, 0, sampleSize)
		// Ensure the dominant value clears the sample_size/N bar
		// comfortably, then fill the rest with noise.
		for i := 0; i < sampleSize/n+50; i++ {
			sample = append(sample, dominant)
		}
		for len(sample) < sampleSize {
			sample = append(sample, rng.Int31n(1_000_000))
		}

		d := Build(Byte, sample)
		if _, ok := slices.BinarySearch(d.Codes, dominant); ok {
			hits++
		}
	}

	if hits < trials*9/10 {
		t.Fatalf("dominant value promoted to an exact code in only %d/%d trials, want >= %d", hits, trials, trials*9/10)
	}
}

func TestFreqCountAgreesWithSampleSize(t *testing.T) {
	sample := []int32{1, 1, 1, 2, 2, 3}
	counts := freq.Count(sample)
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != len(sample) {
		t.Fatalf("freq.Count total = %d, want %d", sum, len(sample))
	}
}
