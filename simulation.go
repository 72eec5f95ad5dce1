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
	"fmt"
	"io"
	"log"

	"github.com/cybrota/lanedodge/road"
	"github.com/schollz/progressbar/v3"
)

// simConfigFrom maps the configuration onto a simulation run.
func simConfigFrom(config *Config) road.SimConfig {
	return road.SimConfig{
		Road:               config.RoadGeometry(),
		ObstacleWidth:      config.Obstacles.Width,
		ObstacleHeight:     config.Obstacles.Height,
		Speed:              config.Obstacles.Speed,
		SpawnEvery:         config.Simulate.SpawnEvery,
		SpecialProbability: config.Obstacles.SpecialProbability,
		BonusProbability:   config.Obstacles.BonusProbability,
		Ticks:              config.Simulate.Ticks,
		Seed:               config.Simulate.Seed,
		CheckEvery:         1,
	}
}

// runSimulation drives the headless workload and prints a summary to out.
func runSimulation(out io.Writer, config *Config, showProgress bool) (road.SimResult, error) {
	idx := road.NewIndex(config.IndexOptions()...)
	cfg := simConfigFrom(config)

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(cfg.Ticks,
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("🚗 Simulating..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(out, "\n✅ Simulation completed!\n")
			}),
		)
	}

	result, err := road.Simulate(idx, cfg, func(tick int) {
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	if err != nil {
		if bar != nil {
			bar.Describe("⚠️  Invariant violated")
			_ = bar.Exit()
		}
		return result, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.Printf("simulation finished: %d ticks, %d obstacles spawned", result.Ticks, result.Spawned)

	fmt.Fprintf(out, "\n%sSimulation summary%s\n", Green, Reset)
	fmt.Fprintf(out, "  ticks:       %d (invariants checked %d times)\n", result.Ticks, result.Checks)
	fmt.Fprintf(out, "  spawned:     %d (normal %d, special %d, bonus %d)\n",
		result.Spawned, result.ByKind[road.Normal], result.ByKind[road.Special], result.ByKind[road.Bonus])
	fmt.Fprintf(out, "  removed:     %d\n", result.Removed)
	fmt.Fprintf(out, "  refused:     %d\n", result.Refused)
	fmt.Fprintf(out, "  peak size:   %d\n", result.MaxLen)
	fmt.Fprintf(out, "  peak height: %d\n", result.MaxHeight)
	fmt.Fprintf(out, "  final size:  %d\n", result.FinalLen)
	return result, nil
}
