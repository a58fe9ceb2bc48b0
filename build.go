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
	"fmt"
	"io"
	"log"
	"time"

	"github.com/dchest/siphash"
	"github.com/google/uuid"

	"github.com/sketchkit/colsketch/internal/freq"
)

// BuildOptions configures BuildWithOptions. The zero value is ready to use:
// it logs nothing.
type BuildOptions struct {
	// Logger receives one summary line per call to BuildWithOptions. A nil
	// Logger discards the line; BuildWithOptions never writes to
	// log.Default() behind its caller's back.
	Logger *log.Logger
}

// BuildStats reports observational telemetry about one call to
// BuildWithOptions. It never affects encoding and has no bearing on the
// returned Dict's correctness.
type BuildStats struct {
	// ID identifies this particular build, for correlating a BuildStats
	// value with the log line BuildWithOptions emits for it.
	ID uuid.UUID

	// Fingerprint is a content hash of the sample, for recognizing repeat
	// builds of "the same" sample across log lines. It is not a security
	// boundary: the siphash key is fixed.
	Fingerprint uint64

	SampleSize            int
	ClusterCount          int
	CalibrationIterations int
	CodeCount             int
	Elapsed               time.Duration

	// TopValue and TopCount describe the single most frequent value in
	// the sample, as computed by internal/freq, regardless of whether
	// that value was ultimately promoted to an exact code.
	TopValue string
	TopCount int
}

func (l *BuildOptions) logger() *log.Logger {
	if l != nil && l.Logger != nil {
		return l.Logger
	}
	return log.New(io.Discard, "", 0)
}

// fingerprint hashes the fmt.Sprint representation of every value in sample
// with a fixed zero/zero siphash key. This is build-telemetry correlation,
// not a security boundary, so a fixed key is appropriate.
func fingerprint[T cmp.Ordered](sample []T) uint64 {
	var buf []byte
	for _, v := range sample {
		buf = append(buf, fmt.Sprint(v)...)
		buf = append(buf, 0)
	}
	return siphash.Hash(0, 0, buf)
}

// BuildWithOptions runs the same construction as Build, additionally
// recording BuildStats and logging a one-line summary through opts' logger.
// The returned Dict is identical, field for field, to what Build(mode,
// sample) would return for the same sample.
func BuildWithOptions[T cmp.Ordered](mode Mode, sample []T, opts BuildOptions) (Dict[T], BuildStats) {
	start := time.Now()

	stats := BuildStats{
		ID:          uuid.New(),
		Fingerprint: fingerprint(sample),
		SampleSize:  len(sample),
	}

	topValue, topCount, _ := freq.Top(freq.Count(sample))
	stats.TopValue = fmt.Sprint(topValue)
	stats.TopCount = topCount

	dict, clusterCount, iterations := buildInstrumented(mode, sample)
	stats.ClusterCount = clusterCount
	stats.CalibrationIterations = iterations
	stats.CodeCount = dict.Len()
	stats.Elapsed = time.Since(start)

	opts.logger().Printf(
		"colsketch: build id=%s mode=%s sample=%d clusters=%d iterations=%d codes=%d elapsed=%s fingerprint=%x top=%q(%d)",
		stats.ID, mode, stats.SampleSize, stats.ClusterCount, stats.CalibrationIterations,
		stats.CodeCount, stats.Elapsed, stats.Fingerprint, stats.TopValue, stats.TopCount,
	)

	return dict, stats
}

// buildInstrumented runs the unchanged Build procedure while additionally
// reporting the cluster count and the number of calibration iterations
// consumed, without a second pass over the sample.
func buildInstrumented[T cmp.Ordered](mode Mode, sample []T) (dict Dict[T], clusterCount, iterations int) {
	if len(sample) == 0 {
		return Dict[T]{Mode: mode, Codes: []T{defaultValue[T]()}}, 0, 0
	}

	sorted := sortCopy(sample)
	n := mode.NumExactCodes()
	clu := clusters(sorted)
	clusterCount = len(clu)

	if len(clu) <= n {
		codes := make([]T, len(clu))
		for i, c := range clu {
			codes[i] = c.value
		}
		return Dict[T]{Mode: mode, Codes: codes}, clusterCount, 0
	}

	codes, iterations := assignWithMinimalStepCounted(len(sorted), n, clu)
	return Dict[T]{Mode: mode, Codes: codes}, clusterCount, iterations
}
