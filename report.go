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
	"strings"

	"github.com/cybrota/potionrank/game"
	"github.com/cybrota/potionrank/probe"
	"github.com/dustin/go-humanize"
)

// formatMoney renders an amount of gold with thousands separators and at
// most two decimals
func formatMoney(amount float64) string {
	return humanize.CommafWithDigits(amount, 2) + " gold"
}

func formatLitres(litres float64) string {
	return humanize.CommafWithDigits(litres, 2) + " L"
}

// solveMarkdown renders the outcome of every day as a markdown table
func solveMarkdown(startingMoney, results []float64) string {
	var b strings.Builder
	b.WriteString("# Day results\n\n")
	if len(results) == 0 {
		b.WriteString("No days to play.\n")
		return b.String()
	}

	b.WriteString("| Day | Starting money | Ending money | Gain |\n")
	b.WriteString("|---|---|---|---|\n")
	total := 0.0
	for i, result := range results {
		start := 0.0
		if i < len(startingMoney) {
			start = startingMoney[i]
		}
		total += result - start
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, formatMoney(start), formatMoney(result), formatMoney(result-start))
	}
	fmt.Fprintf(&b, "\n**Total gain:** %s\n", formatMoney(total))
	return b.String()
}

func inventoryMarkdown(listings []game.Listing) string {
	var b strings.Builder
	b.WriteString("# Inventory\n\n")
	if len(listings) == 0 {
		b.WriteString("The corporation holds no potions.\n")
		return b.String()
	}

	b.WriteString("| Rank | Potion | Buy price | Stock |\n")
	b.WriteString("|---|---|---|---|\n")
	for i, l := range listings {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, l.Name, formatMoney(l.Price), formatLitres(l.Litres))
	}
	return b.String()
}

func listingMarkdown(k int, l game.Listing) string {
	return fmt.Sprintf("# %s most expensive potion\n\n**%s** at %s per litre, %s in stock.\n",
		humanize.Ordinal(k), l.Name, formatMoney(l.Price), formatLitres(l.Litres))
}

func potionMarkdown(p game.Potion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "**Type:** %s\n\n", p.Type)
	fmt.Fprintf(&b, "**Buy price:** %s per litre\n\n", formatMoney(p.BuyPrice))
	fmt.Fprintf(&b, "**Held by the corporation:** %s\n", formatLitres(p.Quantity))
	return b.String()
}

func marketMarkdown(stock []game.Stock) string {
	var b strings.Builder
	b.WriteString("# Vendors\n\n")
	if len(stock) == 0 {
		b.WriteString("No vendor has been given a potion yet. Try `choose 2`.\n")
		return b.String()
	}

	b.WriteString("| Vendor | Potion | Stock |\n")
	b.WriteString("|---|---|---|\n")
	for i, s := range stock {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, s.Name, formatLitres(s.Litres))
	}
	return b.String()
}

func statsMarkdown(stats probe.Stats) string {
	var b strings.Builder
	b.WriteString("# Catalogue table\n\n")
	fmt.Fprintf(&b, "* Conflicts: %s\n", humanize.Comma(int64(stats.Conflicts)))
	fmt.Fprintf(&b, "* Probe steps: %s\n", humanize.Comma(int64(stats.ProbeTotal)))
	fmt.Fprintf(&b, "* Longest probe chain: %s\n", humanize.Comma(int64(stats.ProbeMax)))
	return b.String()
}

// printDayResults writes the day results to w as colored plain text
func printDayResults(w io.Writer, startingMoney, results []float64) {
	fmt.Fprintf(w, "💰 %sDay results%s\n", Green, Reset)
	fmt.Fprintf(w, "═══════════════════════════════════\n")
	for i, result := range results {
		start := 0.0
		if i < len(startingMoney) {
			start = startingMoney[i]
		}
		color := Info
		if result > start {
			color = Green
		}
		fmt.Fprintf(w, "  Day %d: %s → %s%s%s\n", i+1, formatMoney(start), color, formatMoney(result), Reset)
	}
}

func printVendors(w io.Writer, stock []game.Stock) {
	fmt.Fprintf(w, "🧪 %sVendors%s\n", Green, Reset)
	for i, s := range stock {
		fmt.Fprintf(w, "  Vendor %d: %s (%s)\n", i+1, s.Name, formatLitres(s.Litres))
	}
}
