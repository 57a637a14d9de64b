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

package game

import (
	"github.com/cybrota/potionrank/probe"
	"github.com/cybrota/potionrank/strategies"
)

type options struct {
	strategy  strategies.RankStrategy
	tableOpts []probe.Option
}

// Option configures a Game.
type Option func(*options)

// WithSeed picks vendor potions with the deterministic random strategy
// seeded with seed. This is the default, with seed 0.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.strategy = strategies.NewRandomStrategy(seed)
	}
}

// WithStrategy picks vendor potions with strategy.
func WithStrategy(strategy strategies.RankStrategy) Option {
	return func(o *options) {
		o.strategy = strategy
	}
}

// WithBadHash makes every lookup table use the weak hash function.
func WithBadHash() Option {
	return func(o *options) {
		o.tableOpts = append(o.tableOpts, probe.WithBadHash())
	}
}
