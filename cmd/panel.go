// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/danielhkuo/heart-risk/models"
)

var (
	colorLow  = lipgloss.Color("#16A34A")
	colorHigh = lipgloss.Color("#DC2626")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// renderPanel draws the result panel: green for low risk, red for high risk
// and for errors
func renderPanel(view models.RiskView) string {
	color := colorHigh
	if view.Low() {
		color = colorLow
	}

	body := titleStyle.Foreground(color).Render(view.Title)
	if view.Result != "" {
		body += "\n" + view.Result
	}
	return panelStyle.BorderForeground(color).Render(body)
}
