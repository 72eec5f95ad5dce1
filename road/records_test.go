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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		want   []Record
	}{
		{
			name:   "json list",
			format: FormatJSON,
			input:  `[{"x": 100, "y": 1, "kind": "normal"}, {"x": 200, "y": 3, "kind": "SPECIAL", "id": "s1"}]`,
			want: []Record{
				{X: 100, Y: 1, Kind: "normal"},
				{ID: "s1", X: 200, Y: 3, Kind: "special"},
			},
		},
		{
			name:   "json wrapped",
			format: FormatJSON,
			input:  `{"obstacles": [{"x": 5, "y": 6}]}`,
			want:   []Record{{X: 5, Y: 6, Kind: "normal"}},
		},
		{
			name:   "yaml list",
			format: FormatYAML,
			input:  "- x: 1\n  y: 2\n  kind: bonus\n- x: 3\n  y: 4\n",
			want: []Record{
				{X: 1, Y: 2, Kind: "bonus"},
				{X: 3, Y: 4, Kind: "normal"},
			},
		},
		{
			name:   "yaml wrapped",
			format: FormatYAML,
			input:  "obstacles:\n  - x: 7\n    y: 8\n    id: rock\n",
			want:   []Record{{ID: "rock", X: 7, Y: 8, Kind: "normal"}},
		},
		{
			name:   "json wrapped empty list",
			format: FormatJSON,
			input:  `{"obstacles": []}`,
			want:   []Record{},
		},
		{
			name:   "explicit zero coordinates",
			format: FormatYAML,
			input:  "- {x: 0, y: 0}\n",
			want:   []Record{{X: 0, Y: 0, Kind: "normal"}},
		},
		{
			name:   "empty",
			format: FormatJSON,
			input:  "  \n",
			want:   []Record{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeRecords(strings.NewReader(tc.input), tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeRecordsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"broken json", FormatJSON, `[{"x": 1,`},
		{"wrong type", FormatJSON, `[{"x": "left", "y": 1}]`},
		{"unknown kind", FormatYAML, "- x: 1\n  y: 1\n  kind: boulder\n"},
		{"scalar", FormatYAML, "just a string"},
		{"wrong wrapper key", FormatJSON, `{"obstaculos": [{"x": 1, "y": 2}]}`},
		{"empty object", FormatJSON, `{}`},
		{"null wrapper list", FormatJSON, `{"obstacles": null}`},
		{"yaml wrong wrapper key", FormatYAML, "items:\n  - x: 1\n    y: 2\n"},
		{"unknown record field", FormatJSON, `[{"x": 1, "y": 2, "kind": "normal", "extra": true}]`},
		{"yaml unknown record field", FormatYAML, "- x: 1\n  y: 2\n  speed: 4\n"},
		{"missing x", FormatJSON, `[{"y": 3}]`},
		{"missing y", FormatYAML, "obstacles:\n  - x: 4\n"},
		{"trailing json", FormatJSON, `[{"x": 1, "y": 2}] [{"x": 3, "y": 4}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRecords(strings.NewReader(tc.input), tc.format)
			assert.ErrorIs(t, err, ErrMalformedRecords)
		})
	}
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.yml")
	require.NoError(t, os.WriteFile(path, []byte("- {x: 83, y: 0}\n- {x: 283, y: 0, kind: special}\n"), 0644))

	records, err := LoadRecords(path)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	_, err = LoadRecords(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = LoadRecords(filepath.Join(dir, "level.txt"))
	assert.Error(t, err)
}

func TestPopulate(t *testing.T) {
	idx := quietIndex()
	records := []Record{
		{X: 100, Y: 1, Kind: "normal"},
		{X: 100, Y: 1, Kind: "special"},
		{X: 50, Y: 2, Kind: "bonus", ID: "b"},
	}

	inserted, refused := Populate(idx, records)
	assert.Equal(t, 2, inserted)
	assert.Equal(t, 1, refused)

	o, ok := idx.Lookup(Point{100, 1})
	require.True(t, ok)
	assert.Equal(t, "obstacle-0", o.ID)
	assert.Equal(t, Normal, o.Kind)

	o, ok = idx.Lookup(Point{50, 2})
	require.True(t, ok)
	assert.Equal(t, "b", o.ID)
}

func TestRoadLanes(t *testing.T) {
	r := Road{Width: 600, Height: 800, Lanes: 3}

	assert.Equal(t, 200, r.LaneWidth())
	assert.Equal(t, []int{100, 300, 500}, []int{r.LaneCenter(0), r.LaneCenter(1), r.LaneCenter(2)})
	assert.Equal(t, 300, r.LaneCenter(7), "out-of-range lanes fall back to the road center")
	assert.Equal(t, 83, r.SpawnX(0, 35))
	assert.True(t, r.OffScreen(801))
	assert.False(t, r.OffScreen(800))
}
