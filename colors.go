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
	"os"
	"strings"

	ui "github.com/gizak/termui/v3"
)

// ColorScheme holds the termui colors used by the chart view
type ColorScheme struct {
	Bars      []ui.Color
	Label     ui.Color
	Number    ui.Color
	Border    ui.Color
	Title     ui.Color
	TextMuted ui.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI colors for plain terminal output, refreshed by InitializeColors
var Green, Info, Warning, Error, Reset = GetANSIColors()

// detectTerminalMode guesses whether the terminal has a light or dark background
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "7", "15", "255":
				return TerminalModeLight
			}
		}
	}

	for _, key := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(key))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Dark is the common terminal default
	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Bars:      []ui.Color{ui.Color(4), ui.Color(2), ui.Color(5)},
		Label:     ui.ColorBlack,
		Number:    ui.ColorWhite, // drawn on top of the bar
		Border:    ui.Color(8),
		Title:     ui.Color(4),
		TextMuted: ui.Color(240),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Bars:      []ui.Color{ui.Color(14), ui.Color(10), ui.Color(13)},
		Label:     ui.ColorWhite,
		Number:    ui.ColorBlack,
		Border:    ui.Color(240),
		Title:     ui.Color(14),
		TextMuted: ui.Color(245),
	}
}

// InitializeColors detects the terminal mode and sets up matching colors
func InitializeColors() {
	detectedMode = detectTerminalMode()

	switch detectedMode {
	case TerminalModeLight:
		currentColorScheme = createLightColorScheme()
	default:
		currentColorScheme = createDarkColorScheme()
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetColorScheme returns the current color scheme
func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetANSIColors returns escape codes suited to the detected terminal mode
func GetANSIColors() (success, info, warning, error, reset string) {
	// Darker colors read better on light backgrounds
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

func StyleBorder(focused bool) ui.Style {
	scheme := GetColorScheme()
	if focused {
		return ui.NewStyle(scheme.Title)
	}
	return ui.NewStyle(scheme.Border)
}
