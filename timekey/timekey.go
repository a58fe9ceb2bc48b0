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

// Package timekey converts timestamps into a monotonic int64 key usable as
// colsketch.Dict[int64]'s type parameter, for sketching a timestamp column
// — the single most common Column Sketches target in a real columnar
// engine. It deliberately does not depend on any particular timestamp
// representation: Stamp captures only the two fields (Unix seconds and a
// sub-second nanosecond offset) a caller can always derive from a richer
// date/time type, without pulling in that type's own parsing or formatting
// machinery.
package timekey

// Stamp is the minimal timestamp shape timekey needs: the portion of any
// richer date/time type's public surface (Unix() and Nanosecond()) needed
// to compute a sortable key.
type Stamp struct {
	Seconds int64
	Nanos   int32
}

// FromUnix returns a monotonic nanosecond key for s, suitable as
// colsketch.Dict[int64]'s T. For any two Stamps a, b with a before b,
// FromUnix(a) < FromUnix(b).
func FromUnix(s Stamp) int64 {
	return s.Seconds*1_000_000_000 + int64(s.Nanos)
}

// Before reports whether s occurs strictly before other.
func (s Stamp) Before(other Stamp) bool {
	return FromUnix(s) < FromUnix(other)
}

// After reports whether s occurs strictly after other.
func (s Stamp) After(other Stamp) bool {
	return FromUnix(s) > FromUnix(other)
}

// Equal reports whether s and other denote the same instant.
func (s Stamp) Equal(other Stamp) bool {
	return s == other
}
