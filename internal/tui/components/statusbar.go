package components

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width    int
	ViewMode string
	SortKey  string
	Visible  int
	HelpKey  string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "Taskflow · list · sorted by Due Date · 3 tasks"
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	noun := "tasks"
	if props.Visible == 1 {
		noun = "task"
	}
	leftText := " Taskflow · " + props.ViewMode + " · sorted by " + props.SortKey +
		" · " + strconv.Itoa(props.Visible) + " " + noun
	rightText := "press " + props.HelpKey + " for help "

	gapWidth := max(props.Width-lipgloss.Width(leftText)-lipgloss.Width(rightText), 1)
	gap := strings.Repeat(" ", gapWidth)

	return StatusBarStyle.Width(max(props.Width, 0)).Render(leftText + gap + rightText)
}
