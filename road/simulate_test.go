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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSimConfig() SimConfig {
	return SimConfig{
		Road:               Road{Width: 600, Height: 800, Lanes: 3},
		ObstacleWidth:      35,
		ObstacleHeight:     50,
		Speed:              3,
		SpawnEvery:         2,
		SpecialProbability: 0.25,
		BonusProbability:   0.05,
		Ticks:              1500,
		Seed:               1,
		CheckEvery:         1,
	}
}

func TestSimulate(t *testing.T) {
	idx := quietIndex()
	ticks := 0

	result, err := Simulate(idx, testSimConfig(), func(int) { ticks++ })
	require.NoError(t, err)

	assert.Equal(t, 1500, result.Ticks)
	assert.Equal(t, 1500, ticks)
	assert.Equal(t, 750, result.Spawned)
	assert.Zero(t, result.Refused, "spawn keys advance with the road, so they never collide")
	assert.Equal(t, result.Spawned-result.Removed, result.FinalLen)
	assert.Equal(t, idx.Len(), result.FinalLen)
	assert.Equal(t, 1500, result.Checks)

	total := 0
	for _, n := range result.ByKind {
		total += n
	}
	assert.Equal(t, result.Spawned, total)

	// AVL height bound: h < 1.44 log2(n + 2)
	bound := int(1.4405*math.Log2(float64(result.MaxLen+2))) + 1
	assert.LessOrEqual(t, result.MaxHeight, bound)
}

func TestSimulateIsDeterministic(t *testing.T) {
	a, err := Simulate(quietIndex(), testSimConfig(), nil)
	require.NoError(t, err)
	b, err := Simulate(quietIndex(), testSimConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulateNeedsLanes(t *testing.T) {
	cfg := testSimConfig()
	cfg.Road.Lanes = 0
	_, err := Simulate(quietIndex(), cfg, nil)
	assert.Error(t, err)
}
