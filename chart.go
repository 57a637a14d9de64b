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

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

func dayLabels(days int) []string {
	labels := make([]string, days)
	for i := range labels {
		labels[i] = fmt.Sprintf("Day %d", i+1)
	}
	return labels
}

// chartBarWidth spreads the bars over the terminal width, between 5 and 15
// cells each
func chartBarWidth(termWidth, bars int) int {
	if bars <= 0 {
		return 5
	}
	width := (termWidth-2)/bars - 1
	return max(5, min(15, width))
}

// showChart draws the day results until the user presses q or esc
func showChart(startingMoney, results []float64) error {
	if len(results) == 0 {
		return fmt.Errorf("no day results to chart")
	}

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	InitializeColors()
	scheme := GetColorScheme()

	chart := widgets.NewBarChart()
	chart.Title = " 💰 Money at the end of each day "
	chart.TitleStyle = ui.NewStyle(scheme.Title)
	chart.BorderStyle = StyleBorder(true)
	chart.Data = results
	chart.Labels = dayLabels(len(results))
	chart.BarColors = scheme.Bars
	chart.LabelStyles = []ui.Style{ui.NewStyle(scheme.Label)}
	chart.NumStyles = []ui.Style{ui.NewStyle(scheme.Number)}
	chart.NumFormatter = func(v float64) string { return formatMoney(v) }

	start := widgets.NewParagraph()
	start.Title = " Starting money "
	start.BorderStyle = StyleBorder(false)
	start.TextStyle = ui.NewStyle(scheme.TextMuted)
	start.WrapText = true
	start.Text = startingMoneyLine(startingMoney)

	footer := widgets.NewParagraph()
	footer.Border = false
	footer.TextStyle = ui.NewStyle(scheme.TextMuted)
	footer.Text = " q / esc to quit"

	grid := ui.NewGrid()
	layout := func() {
		w, h := ui.TerminalDimensions()
		grid.SetRect(0, 0, w, h)
		chart.BarWidth = chartBarWidth(w, len(results))
		grid.Set(
			ui.NewRow(0.75, chart),
			ui.NewRow(0.2, start),
			ui.NewRow(0.05, footer),
		)
	}
	layout()
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<Escape>", "<C-c>":
			return nil
		case "<Resize>":
			layout()
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}

func startingMoneyLine(startingMoney []float64) string {
	line := ""
	for i, money := range startingMoney {
		if i > 0 {
			line += "  •  "
		}
		line += fmt.Sprintf("Day %d: %s", i+1, formatMoney(money))
	}
	return line
}
