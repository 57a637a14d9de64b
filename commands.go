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
	"strconv"
	"strings"

	"github.com/cybrota/potionrank/game"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

var (
	errEmptyInput     = errors.New("nothing to run")
	errUnknownCommand = errors.New("unknown command")
)

const explorerHelp = `# Commands

* ` + "`inventory`" + ` corporation stock, most expensive first
* ` + "`kth K`" + ` the K-th most expensive potion
* ` + "`rank PRICE`" + ` rank of the potion with that buy price
* ` + "`get NAME`" + ` catalogue entry of a potion
* ` + "`choose N`" + ` hand potions to N vendors
* ` + "`market`" + ` what the vendors sell
* ` + "`solve`" + ` best money at the end of each day
* ` + "`stats`" + ` probing statistics of the catalogue table
`

// volatilePages change with every lookup, so they are never cached
var volatilePages = map[string]bool{"stats": true}

// Session runs explorer commands against one game
type Session struct {
	game     *game.Game
	scenario *Scenario
	pages    *cache.Cache
}

func NewSession(g *game.Game, scenario *Scenario, pages *cache.Cache) *Session {
	return &Session{game: g, scenario: scenario, pages: pages}
}

// splitInput splits an explorer line into a lowercase command name and its
// arguments, honouring shell quoting
func splitInput(input string) (string, []string, error) {
	args, err := shellwords.Parse(input)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse %q: %v", input, err)
	}
	if len(args) == 0 {
		return "", nil, errEmptyInput
	}
	return strings.ToLower(args[0]), args[1:], nil
}

// Run executes one explorer line and returns the page as markdown. Pages of
// read-only commands are cached until a command changes the game.
func (s *Session) Run(input string) (string, error) {
	name, args, err := splitInput(input)
	if err != nil {
		return "", err
	}

	key := name + " " + strings.Join(args, " ")
	if page := GetPage(s.pages, key); page != "" {
		return page, nil
	}

	page, mutates, err := s.execute(name, args)
	if err != nil {
		return "", err
	}
	if mutates {
		InvalidatePages(s.pages)
		return page, nil
	}
	if !volatilePages[name] {
		CachePage(s.pages, key, page)
	}
	return page, nil
}

// execute reports whether the command changed the game along with its page
func (s *Session) execute(name string, args []string) (string, bool, error) {
	switch name {
	case "help":
		return explorerHelp, false, nil
	case "inventory", "inv":
		return inventoryMarkdown(s.game.Inventory()), false, nil
	case "kth":
		k, err := intArg(name, args)
		if err != nil {
			return "", false, err
		}
		listing, err := s.game.KthMostExpensive(k)
		if err != nil {
			return "", false, fmt.Errorf("kth %d: %w", k, err)
		}
		return listingMarkdown(k, listing), false, nil
	case "rank":
		if len(args) != 1 {
			return "", false, fmt.Errorf("usage: rank PRICE")
		}
		price, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return "", false, fmt.Errorf("rank: %q is not a price", args[0])
		}
		r, err := s.game.PriceRank(price)
		if err != nil {
			return "", false, fmt.Errorf("rank %s: %w", args[0], err)
		}
		return fmt.Sprintf("# Rank\n\nThe potion priced at %s is number **%d** by price.\n", formatMoney(price), r), false, nil
	case "get":
		if len(args) == 0 {
			return "", false, fmt.Errorf("usage: get NAME")
		}
		p, err := s.game.Potion(strings.Join(args, " "))
		if err != nil {
			return "", false, err
		}
		return potionMarkdown(p), false, nil
	case "choose":
		n, err := intArg(name, args)
		if err != nil {
			return "", false, err
		}
		stock, err := s.game.ChoosePotionsForVendors(n)
		if err != nil {
			return "", false, err
		}
		return marketMarkdown(stock), true, nil
	case "market":
		return marketMarkdown(s.game.Market()), false, nil
	case "solve":
		results, err := s.game.SolveGame(s.scenario.Valuations, s.scenario.StartingMoney)
		if err != nil {
			return "", false, err
		}
		return solveMarkdown(s.scenario.StartingMoney, results), false, nil
	case "stats":
		return statsMarkdown(s.game.CatalogueStats()), false, nil
	}
	return "", false, fmt.Errorf("%q: %w, type help for the list", name, errUnknownCommand)
}

func intArg(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s N", name)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", name, args[0])
	}
	return n, nil
}
