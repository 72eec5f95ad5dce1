// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package road

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedRecords wraps every decoding or validation failure of a record file.
var ErrMalformedRecords = errors.New("malformed obstacle records")

// Format is the encoding of a record file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported record file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Record is one obstacle as written in a record file.
type Record struct {
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
	X    int    `json:"x" yaml:"x"`
	Y    int    `json:"y" yaml:"y"`
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// rawRecord is a record as decoded, before the coordinates are known to
// be present.
type rawRecord struct {
	ID   string `json:"id" yaml:"id"`
	X    *int   `json:"x" yaml:"x"`
	Y    *int   `json:"y" yaml:"y"`
	Kind string `json:"kind" yaml:"kind"`
}

// recordFile is the wrapped form: {"obstacles": [...]}.
type recordFile struct {
	Obstacles *[]rawRecord `json:"obstacles" yaml:"obstacles"`
}

// strictUnmarshal decodes data into v and fails on fields v does not know.
func strictUnmarshal(format Format, data []byte, v any) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return err
		}
		if dec.More() {
			return errors.New("unexpected data after the first value")
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(v)
	default:
		return fmt.Errorf("unknown record format %d", format)
	}
}

// LoadRecords reads a record file; the format follows the extension.
func LoadRecords(path string) ([]Record, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("record file not found: %s", path)
		}
		return nil, err
	}
	defer file.Close()

	return DecodeRecords(file, format)
}

// DecodeRecords decodes either a bare list of records or an object with
// an "obstacles" list, then validates every record.
func DecodeRecords(r io.Reader, format Format) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []Record{}, nil
	}

	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("unknown record format %d", format)
	}

	var raw []rawRecord
	if listErr := strictUnmarshal(format, data, &raw); listErr != nil {
		var wrapped recordFile
		if err := strictUnmarshal(format, data, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: as a list: %v; as an object: %v", ErrMalformedRecords, listErr, err)
		}
		if wrapped.Obstacles == nil {
			return nil, fmt.Errorf("%w: expected a list of records or an \"obstacles\" list", ErrMalformedRecords)
		}
		raw = *wrapped.Obstacles
	}

	records := make([]Record, len(raw))
	for i, rr := range raw {
		if rr.X == nil || rr.Y == nil {
			return nil, fmt.Errorf("%w: record %d: missing x or y", ErrMalformedRecords, i)
		}
		kind, err := ParseKind(rr.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedRecords, i, err)
		}
		records[i] = Record{ID: rr.ID, X: *rr.X, Y: *rr.Y, Kind: string(kind)}
	}
	return records, nil
}

// Obstacle converts the record; an empty ID becomes "obstacle-<n>".
func (r Record) Obstacle(n int) Obstacle {
	id := r.ID
	if id == "" {
		id = fmt.Sprintf("obstacle-%d", n)
	}
	return Obstacle{
		ID:       id,
		Position: Point{X: r.X, Y: r.Y},
		Kind:     Kind(r.Kind),
	}
}

// Populate inserts one obstacle per record and reports how many were
// stored and how many were refused as duplicate coordinates.
func Populate(idx *Index, records []Record) (inserted, refused int) {
	for i, rec := range records {
		if idx.Insert(rec.Obstacle(i)) {
			inserted++
		} else {
			refused++
		}
	}
	return inserted, refused
}
