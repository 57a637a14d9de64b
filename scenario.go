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

	"github.com/cybrota/potionrank/game"
	"github.com/cybrota/potionrank/strategies"
	"gopkg.in/yaml.v3"
)

// Scenario is one simulation read from a YAML file
type Scenario struct {
	Potions       []game.PotionData `yaml:"potions"`
	Inventory     []game.Stock      `yaml:"inventory"`
	Vendors       int               `yaml:"vendors"`
	Valuations    []game.Valuation  `yaml:"valuations"`
	StartingMoney []float64         `yaml:"starting_money"`
}

// LoadScenario reads and validates a scenario file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario file %s not found", path)
		}
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %v", path, err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %v", path, err)
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Potions) == 0 {
		return fmt.Errorf("no potions listed")
	}
	seen := make(map[string]bool, len(s.Potions))
	for _, p := range s.Potions {
		if p.Name == "" {
			return fmt.Errorf("potion without a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("potion %q listed twice", p.Name)
		}
		if p.BuyPrice <= 0 {
			return fmt.Errorf("potion %q must have a positive buy price", p.Name)
		}
		seen[p.Name] = true
	}
	for _, stock := range s.Inventory {
		if stock.Litres < 0 {
			return fmt.Errorf("negative litres for %q", stock.Name)
		}
	}
	valued := make(map[string]bool, len(s.Valuations))
	for _, v := range s.Valuations {
		if valued[v.Name] {
			return fmt.Errorf("valuation for %q listed twice", v.Name)
		}
		valued[v.Name] = true
	}
	if s.Vendors < 0 {
		return fmt.Errorf("vendors must not be negative")
	}
	return nil
}

// newGame builds a game from the scenario catalogue and inventory, using the
// strategy and hash settings from config
func newGame(config *Config, scenario *Scenario) (*game.Game, error) {
	manager := strategies.NewRankStrategyManager(config.Game.Seed)
	strategy, err := manager.GetStrategy(config.Game.Strategy)
	if err != nil {
		return nil, err
	}

	opts := []game.Option{game.WithStrategy(strategy)}
	if config.Game.BadHash {
		opts = append(opts, game.WithBadHash())
	}

	g := game.New(opts...)
	if err := g.SetTotalPotionData(scenario.Potions); err != nil {
		return nil, err
	}
	if err := g.AddPotionsToInventory(scenario.Inventory); err != nil {
		return nil, err
	}
	return g, nil
}

// openMarket hands potions to the scenario's vendors, if it has any
func openMarket(g *game.Game, scenario *Scenario) ([]game.Stock, error) {
	if scenario.Vendors == 0 {
		return nil, nil
	}
	return g.ChoosePotionsForVendors(scenario.Vendors)
}
