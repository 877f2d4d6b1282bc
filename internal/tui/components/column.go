package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

// ColumnProps carries what a board column needs
type ColumnProps struct {
	Status          models.Status
	Tasks           []*models.Task
	Selected        bool
	SelectedTaskIdx int // -1 if the selection is in another column
	Height          int // total box height, 0 for auto
	Width           int
	ScrollOffset    int
	Now             time.Time
	Project         func(id string) *models.Project
}

// RenderColumn renders a complete column with its title and task cards
//
// Layout:
//
//	{Label} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(props ColumnProps) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusColor(props.Status))).
		Render("■ ") +
		TitleStyle.Render(fmt.Sprintf("%s (%d)", props.Status.Label(), len(props.Tasks)))
	content := header + "\n"

	cardWidth := max(props.Width-4, minColumnWidth-4)

	if len(props.Tasks) == 0 {
		content += SubtleStyle.Italic(true).Padding(1, 0).Render("No tasks")
	} else {
		maxVisible := len(props.Tasks)
		if props.Height > 0 {
			maxVisible = VisibleCards(props.Height)
		}

		// Always reserve space for top indicator
		if props.ScrollOffset > 0 {
			content += IndicatorStyle.Width(cardWidth).Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		start := min(props.ScrollOffset, len(props.Tasks))
		end := min(start+maxVisible, len(props.Tasks))

		cards := make([]string, 0, end-start)
		for i, task := range props.Tasks[start:end] {
			selected := props.Selected && start+i == props.SelectedTaskIdx
			var project *models.Project
			if props.Project != nil {
				project = props.Project(task.ProjectID)
			}
			cards = append(cards, RenderTaskCard(task, project, selected, props.Now, cardWidth))
		}
		content += strings.Join(cards, "\n")

		if end < len(props.Tasks) {
			content += "\n" + IndicatorStyle.Width(cardWidth).Render("▼ more below")
		}
	}

	style := ColumnStyle.Width(max(props.Width, minColumnWidth))
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(props.Height - 2)
	}

	return style.Render(content)
}

// VisibleCards is how many task cards fit in a column of the given height
func VisibleCards(height int) int {
	return max((height-columnOverhead)/TaskCardHeight, 1)
}
