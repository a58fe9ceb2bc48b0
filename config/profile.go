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

// Package config describes, in YAML, which colsketch.Mode a column's
// dictionary should be built with. It is independent of dictionary
// construction itself: a Profile only picks a Mode, it never touches a
// sample.
package config

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/sketchkit/colsketch"
)

// cacheLineThreshold is the block size, in bytes, at or below which a
// Profile resolves to colsketch.Byte. It is the cache-line size named in
// colsketch.Byte's own doc comment, not a tunable.
const cacheLineThreshold = 64

// Profile names a column and the storage block size its dictionary should
// be tuned for.
type Profile struct {
	Column         string `json:"column"`
	BlockSizeBytes int    `json:"blockSizeBytes"`
}

// LoadProfile decodes data (YAML, or JSON since sigs.k8s.io/yaml round-trips
// JSON through YAML) into a Profile. A malformed document returns a non-nil
// error rather than panicking: this is the one place in the module where
// caller-supplied bytes, rather than an in-process value, are parsed.
func LoadProfile(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("config: decoding profile: %w", err)
	}
	return p, nil
}

// Mode resolves p's BlockSizeBytes to the colsketch.Mode its dictionary
// should use: colsketch.Byte for block sizes at or below a 64-byte cache
// line, colsketch.Word for anything larger (e.g. a 4096-byte page).
func (p Profile) Mode() colsketch.Mode {
	if p.BlockSizeBytes <= cacheLineThreshold {
		return colsketch.Byte
	}
	return colsketch.Word
}
