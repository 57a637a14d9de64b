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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage(wordWrap int) string {
	message := fmt.Sprintf(`

 **PotionRank %s**

Run a potion corporation: hand its k-th most expensive potions to vendors and find the best money you can make selling them on to adventurers.

Built with Go %s

# 1. Commands
* **explore** -f scenario.yaml: interactive explorer (default)
* **solve** -f scenario.yaml: best money at the end of each day
* **vendors** -f scenario.yaml -n N: potions handed to N vendors
* **rank** -f scenario.yaml -k K: the K-th most expensive potion in stock
* **chart** -f scenario.yaml: bar chart of the day results
* **stress** -n N: random inserts and deletes against the rank tree
* **settings**: show and create ~/.potionrank.yaml

# 2. Scenario files
A scenario is YAML with *potions* (name, type, buy_price), *inventory* (name, litres), *vendors*, *valuations* (name, price) and *starting_money*.

# 3. Vendor strategies
* random: seeded pick, reproducible for a given game.seed
* top: always the most expensive potion left
* bottom: always the cheapest potion left

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, wordWrap, 3)
	return string(result)
}
