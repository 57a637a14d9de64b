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

package strategies

import (
	"fmt"
	"sort"
)

// RankStrategyManager manages the available rank strategies
type RankStrategyManager struct {
	strategies map[string]RankStrategy
}

// NewRankStrategyManager creates a manager with the built-in strategies.
// The random strategy is seeded with seed.
func NewRankStrategyManager(seed uint32) *RankStrategyManager {
	manager := &RankStrategyManager{
		strategies: make(map[string]RankStrategy),
	}

	manager.RegisterStrategy(NewRandomStrategy(seed))
	manager.RegisterStrategy(&TopStrategy{})
	manager.RegisterStrategy(&BottomStrategy{})

	return manager
}

// RegisterStrategy registers a strategy, replacing any with the same name
func (rsm *RankStrategyManager) RegisterStrategy(strategy RankStrategy) {
	rsm.strategies[normalizeName(strategy.Name())] = strategy
}

// GetStrategy looks a strategy up by name
func (rsm *RankStrategyManager) GetStrategy(name string) (RankStrategy, error) {
	if name == "" {
		return nil, fmt.Errorf("no strategy name provided")
	}
	strategy, ok := rsm.strategies[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("no rank strategy found for %q (available: %v)", name, rsm.Names())
	}
	return strategy, nil
}

// Names returns the registered strategy names in sorted order
func (rsm *RankStrategyManager) Names() []string {
	names := make([]string, 0, len(rsm.strategies))
	for name := range rsm.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
