/*
 * Copyright 2026 StorePulse Contributors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package views

import "github.com/charmbracelet/lipgloss"

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

// Styles bundles the lipgloss styles shared across views.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Dim      lipgloss.Style
	Bright   lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	StatCard   lipgloss.Style
	StatLabel  lipgloss.Style
	StatValue  lipgloss.Style
	StatFooter lipgloss.Style

	TableHeader lipgloss.Style
	SelectedRow lipgloss.Style

	Card       lipgloss.Style
	ErrorPanel lipgloss.Style
	Modal      lipgloss.Style

	NavActive lipgloss.Style
	NavItem   lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		Bright: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		StatCard: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaPurple)),
		StatLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		StatValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)).
			Bold(true),
		StatFooter: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		TableHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)).
			Bold(true),
		SelectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)).
			Bold(true),
		Card: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaComment)),
		ErrorPanel: lipgloss.NewStyle().
			Padding(1, 4).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(draculaRed)),
		Modal: lipgloss.NewStyle().
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(draculaCyan)),
		NavActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true).
			Underline(true),
		NavItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
	}
}

// Badge styles a status badge by its class.
func (s Styles) Badge(class string) lipgloss.Style {
	switch class {
	case "status-completed":
		return s.Success
	case "status-failed":
		return s.Danger
	case "status-pending":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(draculaYellow))
	case "status-processing":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))
	default:
		return s.Dim
	}
}

// LoadStyle picks the color shared by a store's status label and bar.
func (s Styles) LoadStyle(level LoadLevel) lipgloss.Style {
	switch level {
	case LoadCritical:
		return s.Danger
	case LoadModerate:
		return s.Warning
	default:
		return s.Success
	}
}
