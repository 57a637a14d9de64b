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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".potionrank.yaml"

type GameConfig struct {
	Seed     uint32 `yaml:"seed"`
	Strategy string `yaml:"strategy"`
	BadHash  bool   `yaml:"bad_hash"`
}

type DisplayConfig struct {
	WordWrap int  `yaml:"word_wrap"`
	Quiet    bool `yaml:"quiet"`
}

type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
}

var defaultConfig = Config{
	Game: GameConfig{
		Seed:     0,
		Strategy: "random",
		BadHash:  false,
	},
	Display: DisplayConfig{
		WordWrap: 80,
		Quiet:    false,
	},
}

// LoadConfig reads ~/.potionrank.yaml, falling back to the defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return withDefaults(defaultConfig), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return withDefaults(defaultConfig), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return withDefaults(defaultConfig), nil
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return withDefaults(defaultConfig), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	return withDefaults(config), nil
}

// withDefaults fills the zero-valued fields a partial config file leaves out
func withDefaults(config Config) *Config {
	if config.Game.Strategy == "" {
		config.Game.Strategy = defaultConfig.Game.Strategy
	}
	if config.Display.WordWrap <= 0 {
		config.Display.WordWrap = defaultConfig.Display.WordWrap
	}
	return &config
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 PotionRank Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🎲 %sGame:%s\n", Green, Reset)
	fmt.Printf("  • %sseed%s: %d\n", Green, Reset, config.Game.Seed)
	fmt.Printf("  • %sstrategy%s: %s\n", Green, Reset, config.Game.Strategy)
	fmt.Printf("    How vendors pick their potion by price rank (random, top, bottom)\n")
	fmt.Printf("  • %sbad_hash%s: %t\n\n", Green, Reset, config.Game.BadHash)

	fmt.Printf("🖥️  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sword_wrap%s: %d\n", Green, Reset, config.Display.WordWrap)
	fmt.Printf("  • %squiet%s: %t\n\n", Green, Reset, config.Display.Quiet)

	fmt.Printf("💡 To change the vendor strategy, edit %s:\n", configPath)
	fmt.Printf("   game:\n     strategy: top\n")
}
