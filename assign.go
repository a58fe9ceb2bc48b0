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

// calibrationIterations bounds assignWithMinimalStep's correction loop. This
// is the same ad-hoc cap the original algorithm uses; there is nothing
// principled about the value 9 beyond "a few tries is enough in practice".
const calibrationIterations = 9

// assignWithStep divides clu into a sequence of windows whose cumulative
// cluster count is at least step, and emits one representative value per
// window: the value belonging to the cluster with the largest count seen in
// that window (earliest cluster wins ties).
//
// The cluster immediately after a closed window is skipped as a bin
// boundary and is never counted in any window (firstIdx advances to
// lastIdx+1, not lastIdx). This is a known quirk of the algorithm, kept as
// is: it is part of the observable behaviour of the code counts produced.
func assignWithStep[T cmp.Ordered](step int, clu []cluster[T]) []T {
	var codes []T
	firstIdx := 0
	for firstIdx < len(clu) {
		lastIdx, idxWithMax, sum := firstIdx, firstIdx, 0
		for lastIdx < len(clu) && sum < step {
			if clu[idxWithMax].count < clu[lastIdx].count {
				idxWithMax = lastIdx
			}
			sum += clu[lastIdx].count
			lastIdx++
		}
		codes = append(codes, clu[idxWithMax].value)
		firstIdx = lastIdx + 1
	}
	return codes
}

// assignWithMinimalStep selects up to ncodes representative values from clu,
// one per roughly-equal-mass bin of the sample, biased towards the most
// frequent value in each bin.
//
// A single pass of assignWithStep can overshoot its step on a high-count
// cluster, absorbing an entire window's worth of budget into one cluster and
// yielding fewer than ncodes codes overall. This function repeats the pass,
// shrinking step by the ratio of codes produced to codes wanted, until the
// result lands on or just under ncodes or the iteration cap is hit. It never
// returns more than ncodes values.
func assignWithMinimalStep[T cmp.Ordered](sampleSize, ncodes int, clu []cluster[T]) []T {
	codes, _ := assignWithMinimalStepCounted(sampleSize, ncodes, clu)
	return codes
}

// assignWithMinimalStepCounted is assignWithMinimalStep instrumented to also
// report the number of calibration iterations actually consumed, for the
// build telemetry layer. It is the single calibration loop both Build and
// BuildWithOptions run; BuildWithOptions never duplicates this logic in a
// second pass.
func assignWithMinimalStepCounted[T cmp.Ordered](sampleSize, ncodes int, clu []cluster[T]) (codes []T, iterations int) {
	step := sampleSize / ncodes
	if step < 1 {
		step = 1
	}
	codes = assignWithStep(step, clu)

	for i := 0; i < calibrationIterations; i++ {
		iterations = i + 1
		if len(codes) == ncodes {
			break
		}
		if len(codes) > ncodes {
			codes = codes[:ncodes]
			break
		}

		// len(codes) < ncodes: estimate the bias as the ratio of codes
		// produced to codes wanted, scaled by 10,000 to avoid floats, and
		// shrink step by that ratio.
		bias := (len(codes) * 10_000) / ncodes
		step = (step * bias) / 10_000
		if step < 1 {
			step = 1
		}

		next := assignWithStep(step, clu)
		if len(next) > ncodes {
			break
		}
		codes = next
	}

	return codes, iterations
}
