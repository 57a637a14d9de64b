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
	"log"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// loadConfigOrDefault loads the user config, warning and falling back to the
// defaults when it cannot be parsed
func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

// mustLoadGame reads the scenario behind the -f flag and builds its game
func mustLoadGame(cmd *cobra.Command, config *Config) (*Scenario, *Session) {
	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		log.Fatalf("A scenario file is required, pass one with -f")
	}

	scenario, err := LoadScenario(path)
	if err != nil {
		log.Fatalf("Error reading scenario: %v", err)
	}
	g, err := newGame(config, scenario)
	if err != nil {
		log.Fatalf("Error setting up game: %v", err)
	}
	return scenario, NewSession(g, scenario, NewPageCache())
}

func main() {
	asciiLogo := `
 ___     _   _          ___           _
| _ \___| |_(_)___ _ _ | _ \__ _ _ _ | |__
|  _/ _ \  _| / _ \ ' \|   / _' | ' \| / /
|_| \___/\__|_\___/_||_|_|_\__,_|_||_|_\_\
Rank, hand out and trade potions with an order-statistics tree [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	explore := func(cmd *cobra.Command, args []string) {
		config := loadConfigOrDefault()
		scenario, session := mustLoadGame(cmd, config)
		if _, err := openMarket(session.game, scenario); err != nil {
			log.Fatalf("Error choosing vendor potions: %v", err)
		}
		if err := runExplorer(session, config); err != nil {
			log.Fatalf("Error running explorer: %v", err)
		}
	}

	var cmdExplore = &cobra.Command{
		Use:     "explore",
		Aliases: []string{"run"},
		Short:   "Launches the interactive potion explorer",
		Long:    fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens an interactive prompt over the scenario's inventory and vendors`),
		Args:    cobra.NoArgs,
		Run:     explore,
	}

	var cmdSolve = &cobra.Command{
		Use:   "solve",
		Short: "Print the best money at the end of each day",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Solve hands potions to the scenario's vendors and plays every day greedily`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			scenario, session := mustLoadGame(cmd, config)
			stock, err := openMarket(session.game, scenario)
			if err != nil {
				log.Fatalf("Error choosing vendor potions: %v", err)
			}
			results, err := session.game.SolveGame(scenario.Valuations, scenario.StartingMoney)
			if err != nil {
				log.Fatalf("Error solving game: %v", err)
			}

			if !config.Display.Quiet {
				printVendors(os.Stdout, stock)
				fmt.Println()
			}
			printDayResults(os.Stdout, scenario.StartingMoney, results)
		},
	}

	var cmdVendors = &cobra.Command{
		Use:   "vendors",
		Short: "Show which potions the vendors get",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			_, session := mustLoadGame(cmd, config)
			n, _ := cmd.Flags().GetInt("vendors")
			stock, err := session.game.ChoosePotionsForVendors(n)
			if err != nil {
				log.Fatalf("Error choosing vendor potions: %v", err)
			}
			printVendors(os.Stdout, stock)
		},
	}
	cmdVendors.Flags().IntP("vendors", "n", 1, "number of vendors")

	var cmdRank = &cobra.Command{
		Use:   "rank",
		Short: "Print the k-th most expensive potion in stock",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			_, session := mustLoadGame(cmd, config)
			k, _ := cmd.Flags().GetInt("kth")
			l, err := session.game.KthMostExpensive(k)
			if err != nil {
				log.Fatalf("Error ranking potions: %v", err)
			}
			fmt.Printf("%s%s%s at %s per litre (%s in stock)\n", Green, l.Name, Reset, formatMoney(l.Price), formatLitres(l.Litres))
		},
	}
	cmdRank.Flags().IntP("kth", "k", 1, "rank, 1 being the most expensive")

	var cmdChart = &cobra.Command{
		Use:   "chart",
		Short: "Draw the day results as a bar chart",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			scenario, session := mustLoadGame(cmd, config)
			if _, err := openMarket(session.game, scenario); err != nil {
				log.Fatalf("Error choosing vendor potions: %v", err)
			}
			results, err := session.game.SolveGame(scenario.Valuations, scenario.StartingMoney)
			if err != nil {
				log.Fatalf("Error solving game: %v", err)
			}
			if err := showChart(scenario.StartingMoney, results); err != nil {
				log.Fatalf("Error drawing chart: %v", err)
			}
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run random inserts and deletes against the rank tree",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			n, _ := cmd.Flags().GetInt("ops")
			result, err := runStress(n, config.Game.Seed, stressProgressWriter(config.Display.Quiet))
			if err != nil {
				log.Fatalf("Stress run failed: %v", err)
			}
			printStressResult(os.Stdout, result)
		},
	}
	cmdStress.Flags().IntP("ops", "n", 100000, "number of operations")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show PotionRank configuration settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print PotionRank usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the potionrank CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			fmt.Println(getHelpMessage(config.Display.WordWrap))
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print PotionRank version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "potionrank",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to explore when no subcommand is provided
			explore(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringP("file", "f", "", "scenario YAML file")
	rootCmd.AddCommand(cmdExplore, cmdSolve, cmdVendors, cmdRank, cmdChart, cmdStress, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
