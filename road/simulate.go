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
	"fmt"
	"math/rand"
)

// SimConfig drives a headless workload against an Index: obstacles spawn
// in random lanes, scroll down the road and are removed once off-screen.
type SimConfig struct {
	Road               Road
	ObstacleWidth      int
	ObstacleHeight     int
	Speed              int // pixels per tick
	SpawnEvery         int // ticks between spawns
	SpecialProbability float64
	BonusProbability   float64
	Ticks              int
	Seed               int64
	CheckEvery         int // verify tree invariants every n ticks, 0 disables
}

// SimResult summarizes a simulation run.
type SimResult struct {
	Ticks     int
	Spawned   int
	Refused   int
	Removed   int
	MaxLen    int
	MaxHeight int
	FinalLen  int
	Checks    int
	ByKind    map[Kind]int
}

// live is an obstacle on screen. The index key stays at the spawn
// coordinate while y scrolls.
type live struct {
	key Point
	y   int
}

// Simulate runs cfg against idx. onTick, when set, is called after every
// tick. The first invariant violation stops the run with an error.
func Simulate(idx *Index, cfg SimConfig, onTick func(tick int)) (SimResult, error) {
	if cfg.Road.Lanes <= 0 {
		return SimResult{}, fmt.Errorf("simulation needs at least one lane, got %d", cfg.Road.Lanes)
	}
	if cfg.SpawnEvery <= 0 {
		cfg.SpawnEvery = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	result := SimResult{ByKind: make(map[Kind]int)}
	var onScreen []live
	distance := 0 // road travelled so far, the Y of new spawn keys

	for tick := 0; tick < cfg.Ticks; tick++ {
		distance += cfg.Speed

		if tick%cfg.SpawnEvery == 0 {
			lane := rng.Intn(cfg.Road.Lanes)
			kind := pickKind(rng, cfg.SpecialProbability, cfg.BonusProbability)
			key := Point{X: cfg.Road.SpawnX(lane, cfg.ObstacleWidth), Y: distance}
			o := Obstacle{ID: fmt.Sprintf("sim-%d", tick), Position: key, Kind: kind}
			if idx.Insert(o) {
				result.Spawned++
				result.ByKind[kind]++
				onScreen = append(onScreen, live{key: key, y: -cfg.ObstacleHeight})
			} else {
				result.Refused++
			}
		}

		kept := onScreen[:0]
		for _, l := range onScreen {
			l.y += cfg.Speed
			if cfg.Road.OffScreen(l.y) {
				if idx.Remove(l.key) {
					result.Removed++
				}
				continue
			}
			kept = append(kept, l)
		}
		onScreen = kept

		result.MaxLen = max(result.MaxLen, idx.Len())
		result.MaxHeight = max(result.MaxHeight, idx.Height())

		if cfg.CheckEvery > 0 && tick%cfg.CheckEvery == 0 {
			if err := idx.Check(); err != nil {
				return result, fmt.Errorf("tick %d: %w", tick, err)
			}
			result.Checks++
		}

		result.Ticks++
		if onTick != nil {
			onTick(tick)
		}
	}

	result.FinalLen = idx.Len()
	return result, nil
}

func pickKind(rng *rand.Rand, special, bonus float64) Kind {
	r := rng.Float64()
	switch {
	case r < special:
		return Special
	case r < special+bonus:
		return Bonus
	default:
		return Normal
	}
}
