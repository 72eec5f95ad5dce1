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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cybrota/lanedodge/road"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

const configFileName = ".lanedodge.yaml"

type RoadConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Lanes  int `yaml:"lanes"`
}

type ObstacleConfig struct {
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	Speed              int     `yaml:"speed"`
	SpecialProbability float64 `yaml:"special_probability"`
	BonusProbability   float64 `yaml:"bonus_probability"`
}

type IndexConfig struct {
	BloomSize      uint `yaml:"bloom_size"`
	BloomHashes    uint `yaml:"bloom_hashes"`
	WarnDuplicates bool `yaml:"warn_duplicates"`
}

type SimulateConfig struct {
	Ticks      int   `yaml:"ticks"`
	SpawnEvery int   `yaml:"spawn_every"`
	Seed       int64 `yaml:"seed"`
}

type Config struct {
	Road      RoadConfig     `yaml:"road"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Index     IndexConfig    `yaml:"index"`
	Simulate  SimulateConfig `yaml:"simulate"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Road: RoadConfig{
			Width:  600,
			Height: 800,
			Lanes:  3,
		},
		Obstacles: ObstacleConfig{
			Width:              35,
			Height:             50,
			Speed:              3,
			SpecialProbability: 0.25,
			BonusProbability:   0.05,
		},
		Index: IndexConfig{
			BloomSize:      4096,
			BloomHashes:    4,
			WarnDuplicates: true,
		},
		Simulate: SimulateConfig{
			Ticks:      2000,
			SpawnEvery: 20,
		},
	}
}

// Validate reports every problem found, not just the first.
func (c *Config) Validate() error {
	var problems []string

	if c.Road.Width < 400 {
		problems = append(problems, fmt.Sprintf("road.width must be >= 400, got %d", c.Road.Width))
	}
	if c.Road.Height < 300 {
		problems = append(problems, fmt.Sprintf("road.height must be >= 300, got %d", c.Road.Height))
	}
	if c.Road.Lanes < 1 {
		problems = append(problems, fmt.Sprintf("road.lanes must be >= 1, got %d", c.Road.Lanes))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		problems = append(problems, "obstacles.width and obstacles.height must be positive")
	}
	if c.Obstacles.Speed <= 0 {
		problems = append(problems, fmt.Sprintf("obstacles.speed must be positive, got %d", c.Obstacles.Speed))
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"obstacles.special_probability", c.Obstacles.SpecialProbability},
		{"obstacles.bonus_probability", c.Obstacles.BonusProbability},
	} {
		if p.value < 0 || p.value > 1 {
			problems = append(problems, fmt.Sprintf("%s must be between 0 and 1, got %g", p.name, p.value))
		}
	}
	if c.Obstacles.SpecialProbability+c.Obstacles.BonusProbability > 1 {
		problems = append(problems, "obstacles.special_probability + obstacles.bonus_probability must not exceed 1")
	}
	if c.Index.BloomSize == 0 || c.Index.BloomHashes == 0 {
		problems = append(problems, "index.bloom_size and index.bloom_hashes must be positive")
	}
	if c.Simulate.Ticks < 0 || c.Simulate.SpawnEvery < 1 {
		problems = append(problems, "simulate.ticks must be >= 0 and simulate.spawn_every >= 1")
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// RoadGeometry returns the road described by the configuration.
func (c *Config) RoadGeometry() road.Road {
	return road.Road{Width: c.Road.Width, Height: c.Road.Height, Lanes: c.Road.Lanes}
}

// IndexOptions returns the index options described by the configuration.
func (c *Config) IndexOptions() []road.IndexOption {
	return []road.IndexOption{
		road.WithBloom(c.Index.BloomSize, c.Index.BloomHashes),
		road.WithDuplicateWarnings(c.Index.WarnDuplicates),
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.lanedodge.yaml. A missing, unreadable or invalid
// file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// LoadConfigFrom reads the file at path on top of the defaults, so a
// partial file only overrides what it names.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to path as YAML.
func SaveConfig(path string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}
	return nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}
	return SaveConfig(configPath, DefaultConfig())
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("⚠️  %v. Using default settings.\n\n", err)
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Lanedodge Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🛣️  %sRoad:%s\n", Green, Reset)
	fmt.Printf("  • %swidth%s: %d  %sheight%s: %d  %slanes%s: %d\n\n",
		Green, Reset, config.Road.Width, Green, Reset, config.Road.Height, Green, Reset, config.Road.Lanes)

	fmt.Printf("🚧 %sObstacles:%s\n", Green, Reset)
	fmt.Printf("  • %ssize%s: %dx%d  %sspeed%s: %d\n", Green, Reset, config.Obstacles.Width, config.Obstacles.Height, Green, Reset, config.Obstacles.Speed)
	fmt.Printf("  • %sspecial_probability%s: %g  %sbonus_probability%s: %g\n\n",
		Green, Reset, config.Obstacles.SpecialProbability, Green, Reset, config.Obstacles.BonusProbability)

	fmt.Printf("🌳 %sIndex:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_size%s: %d  %sbloom_hashes%s: %d\n", Green, Reset, config.Index.BloomSize, Green, Reset, config.Index.BloomHashes)
	fmt.Printf("  • %swarn_duplicates%s: %t\n", Green, Reset, config.Index.WarnDuplicates)
	fmt.Printf("    Duplicate coordinates are always refused; this only controls the warning.\n\n")

	fmt.Printf("🎲 %sSimulate:%s\n", Green, Reset)
	fmt.Printf("  • %sticks%s: %d  %sspawn_every%s: %d  %sseed%s: %d\n\n",
		Green, Reset, config.Simulate.Ticks, Green, Reset, config.Simulate.SpawnEvery, Green, Reset, config.Simulate.Seed)

	fmt.Printf("💡 To change a setting, edit %s, for example:\n", configPath)
	fmt.Printf("   road:\n     lanes: 4\n")
}
