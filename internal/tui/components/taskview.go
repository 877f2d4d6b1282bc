package components

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/theme"
)

type TaskViewProps struct {
	Task       *models.Task
	Project    *models.Project
	Now        time.Time
	PopupWidth int
	Footer     string
}

// RenderTaskView renders the detail popup: title and markdown description
// on the left, metadata on the right
func RenderTaskView(props TaskViewProps) string {
	task := props.Task

	contentWidth := props.PopupWidth - 6
	leftColWidth := (contentWidth * 65) / 100
	rightColWidth := contentWidth - leftColWidth - 1

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight))

	leftParts := []string{
		titleStyle.Render(task.Title),
		"",
		RenderDescription(DescriptionProps{
			Description: task.Description,
			Width:       leftColWidth - 2,
		}),
		"",
		SubtleStyle.Render(props.Footer),
	}

	leftColumn := lipgloss.NewStyle().
		Width(leftColWidth).
		Padding(0, 1).
		Render(strings.Join(leftParts, "\n"))

	rightColumn := RenderMetadataColumn(MetadataColumnProps{
		Task:      task,
		Project:   props.Project,
		Now:       props.Now,
		Width:     rightColWidth,
		HasBorder: true,
	})

	return lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightColumn)
}
