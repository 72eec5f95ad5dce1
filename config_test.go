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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	geometry := config.RoadGeometry()
	assert.Equal(t, 600, geometry.Width)
	assert.Equal(t, 3, geometry.Lanes)
	assert.Len(t, config.IndexOptions(), 2)
}

func TestLoadConfigFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanedodge.yaml")
	data := []byte("road:\n  lanes: 5\nsimulate:\n  seed: 7\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 5, config.Road.Lanes)
	assert.Equal(t, int64(7), config.Simulate.Seed)
	assert.Equal(t, 600, config.Road.Width)
	assert.Equal(t, 3, config.Obstacles.Speed)
}

func TestLoadConfigFromRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfigFrom(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	malformed := filepath.Join(dir, "malformed.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("road: [1, 2"), 0644))
	_, err = LoadConfigFrom(malformed)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("road:\n  lanes: 0\n"), 0644))
	_, err = LoadConfigFrom(invalid)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateListsEveryProblem(t *testing.T) {
	config := DefaultConfig()
	config.Road.Width = 100
	config.Road.Lanes = 0
	config.Obstacles.SpecialProbability = 1.5

	err := config.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "road.width")
	assert.Contains(t, err.Error(), "road.lanes")
	assert.Contains(t, err.Error(), "obstacles.special_probability")
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lanedodge.yaml")

	config := DefaultConfig()
	config.Road.Lanes = 4
	config.Index.WarnDuplicates = false
	require.NoError(t, SaveConfig(path, config))

	loaded, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)

	config.Road.Lanes = -1
	assert.Error(t, SaveConfig(path, config))
}
