package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab is one project filter tab
type Tab struct {
	Name  string
	Color string // empty uses the default text color
}

// RenderTabs renders a tab bar with the given tabs
// selectedIdx indicates which tab is active (0-indexed)
// width is the total width to fill with the tab gap
//
// Layout:
//
//	╭──────╮ ╭──────╮                      [Notification]
//	│ Tab1 │ │ Tab2 │──────────────────────
//	      active    inactive
func RenderTabs(tabs []Tab, selectedIdx int, width int, notificationContent string) string {
	var renderedTabs []string

	for i, tab := range tabs {
		name := tab.Name
		if tab.Color != "" {
			name = lipgloss.NewStyle().Foreground(lipgloss.Color(tab.Color)).Render("● ") + name
		}
		if i == selectedIdx {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Bold(true).Render(name))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(name))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	// Calculate gap width accounting for notification if present
	notificationWidth := lipgloss.Width(notificationContent)
	gapWidth := max(width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notificationContent != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
